package media

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/mock"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func TestGetMedia_Success(t *testing.T) {
	id := uuid.NewUUID()
	repo := &mock.MockMediaRepo{
		AssetRecord: &model.MediaAsset{ID: id, Status: model.MediaStatusProcessed},
	}
	svc := NewMediaGetter(repo)

	got, err := svc.GetMedia(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("id = %s; want %s", got.ID, id)
	}
}

func TestGetMedia_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	svc := NewMediaGetter(repo)

	_, err := svc.GetMedia(context.Background(), uuid.NewUUID())
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("got %v; want ErrAssetNotFound", err)
	}
}

func TestGetMedia_RepoError(t *testing.T) {
	repoErr := errors.New("db gone")
	repo := &mock.MockMediaRepo{GetErr: repoErr}
	svc := NewMediaGetter(repo)

	_, err := svc.GetMedia(context.Background(), uuid.NewUUID())
	if !errors.Is(err, repoErr) {
		t.Fatalf("got %v; want repo error", err)
	}
}
