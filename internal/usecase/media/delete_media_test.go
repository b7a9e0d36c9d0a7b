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

func TestDeleteMedia_RemovesAllObjects(t *testing.T) {
	id := uuid.NewUUID()
	processed := id.String() + "_processed_logo.jpeg"
	thumb := id.String() + "_processed_thumbnail.jpeg"
	repo := &mock.MockMediaRepo{
		AssetRecord: &model.MediaAsset{
			ID:           id,
			Status:       model.MediaStatusProcessed,
			OriginalKey:  "kitchen/originals/" + id.String() + ".jpeg",
			ProcessedKey: &processed,
			ThumbnailKey: &thumb,
		},
	}
	strg := &mock.Storage{}
	svc := NewMediaDeleter(repo, strg, "kitchen-media")

	if err := svc.DeleteMedia(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(strg.RemovedKeys) != 3 {
		t.Fatalf("removed %d objects; want 3", len(strg.RemovedKeys))
	}
	if repo.SoftDeletedID != id {
		t.Error("row was not soft-deleted")
	}
}

func TestDeleteMedia_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	svc := NewMediaDeleter(repo, &mock.Storage{}, "kitchen-media")

	err := svc.DeleteMedia(context.Background(), uuid.NewUUID())
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("got %v; want ErrAssetNotFound", err)
	}
}

func TestDeleteMedia_OriginalRemoveFails(t *testing.T) {
	id := uuid.NewUUID()
	removeErr := errors.New("minio down")
	repo := &mock.MockMediaRepo{
		AssetRecord: &model.MediaAsset{
			ID:          id,
			Status:      model.MediaStatusUploading,
			OriginalKey: "kitchen/originals/" + id.String() + ".jpeg",
		},
	}
	strg := &mock.Storage{RemoveErr: removeErr}
	svc := NewMediaDeleter(repo, strg, "kitchen-media")

	err := svc.DeleteMedia(context.Background(), id)
	if !errors.Is(err, removeErr) {
		t.Fatalf("got %v; want storage error", err)
	}
	if repo.SoftDeletedID != (uuid.UUID{}) {
		t.Error("row must not be soft-deleted while the original still exists")
	}
}
