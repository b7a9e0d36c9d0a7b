package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/mock"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func acceptInput() port.AcceptUploadInput {
	return port.AcceptUploadInput{
		KitchenID:    uuid.NewUUID(),
		RequesterID:  uuid.NewUUID(),
		CategoryType: "gallery",
		MediaType:    model.MediaTypeImage,
		FileName:     "plate.jpeg",
		ContentType:  "image/jpeg",
		Size:         1024,
		Reader:       strings.NewReader("jpeg bytes"),
	}
}

func TestAcceptUpload_Success(t *testing.T) {
	fixed := uuid.NewUUID()
	repo := &mock.MockMediaRepo{SetStatusChanged: true}
	strg := &mock.Storage{}
	pub := &mock.MockUploadPublisher{}
	svc := NewUploadAccepter(repo, strg, pub, "kitchen-media", func() uuid.UUID { return fixed })

	in := acceptInput()
	id, err := svc.AcceptUpload(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != fixed {
		t.Errorf("id = %s; want %s", id, fixed)
	}

	wantKey := in.KitchenID.String() + "/originals/" + fixed.String() + ".jpeg"
	if len(strg.SavedKeys) != 1 || strg.SavedKeys[0] != wantKey {
		t.Errorf("saved keys = %v; want [%s]", strg.SavedKeys, wantKey)
	}

	if repo.Created == nil {
		t.Fatal("asset row was not created")
	}
	if repo.Created.Status != model.MediaStatusUploading {
		t.Errorf("created status = %s; want UPLOADING", repo.Created.Status)
	}
	if repo.Created.OriginalKey != wantKey {
		t.Errorf("original key = %q; want %q", repo.Created.OriginalKey, wantKey)
	}

	if !pub.Called {
		t.Fatal("publisher not called")
	}
	if pub.In.MediaID != fixed || pub.In.KitchenID != in.KitchenID || pub.In.RequesterID != in.RequesterID {
		t.Error("publish input identity fields do not match")
	}
}

func TestAcceptUpload_StorageFailure(t *testing.T) {
	saveErr := errors.New("minio down")
	repo := &mock.MockMediaRepo{}
	strg := &mock.Storage{SaveErr: saveErr}
	pub := &mock.MockUploadPublisher{}
	svc := NewUploadAccepter(repo, strg, pub, "kitchen-media", uuid.NewUUID)

	id, err := svc.AcceptUpload(context.Background(), acceptInput())
	if !errors.Is(err, saveErr) {
		t.Fatalf("got %v; want wrapped storage error", err)
	}
	if id != (uuid.UUID{}) {
		t.Error("no id should come back when the original is not stored")
	}
	if repo.Created != nil {
		t.Error("no row should be created when the original is not stored")
	}
}

func TestAcceptUpload_PublishFailureStillReturnsID(t *testing.T) {
	pubErr := errors.New("redis down")
	repo := &mock.MockMediaRepo{}
	strg := &mock.Storage{}
	pub := &mock.MockUploadPublisher{Err: pubErr}
	svc := NewUploadAccepter(repo, strg, pub, "kitchen-media", uuid.NewUUID)

	id, err := svc.AcceptUpload(context.Background(), acceptInput())
	if !errors.Is(err, pubErr) {
		t.Fatalf("got %v; want publish error", err)
	}
	if id == (uuid.UUID{}) {
		t.Error("the accepted id must come back even when publishing fails")
	}
}
