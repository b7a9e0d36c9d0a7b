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

func publishInput() port.PublishUploadInput {
	return port.PublishUploadInput{
		MediaID:        uuid.NewUUID(),
		SourceLocation: "kitchen/originals/photo.jpeg",
		KitchenID:      uuid.NewUUID(),
		RequesterID:    uuid.NewUUID(),
		CategoryType:   "logo",
		MediaType:      model.MediaTypeImage,
	}
}

func TestPublishUpload_Success(t *testing.T) {
	repo := &mock.MockMediaRepo{SetStatusChanged: true}
	pub := &mock.Publisher{}
	svc := NewUploadPublisher(repo, pub)

	in := publishInput()
	if err := svc.PublishUpload(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pub.Published) != 1 {
		t.Fatalf("published %d messages; want 1", len(pub.Published))
	}
	env := pub.Published[0]
	if env.MediaID != in.MediaID || env.OwnerEntityID != in.KitchenID || env.RequesterID != in.RequesterID {
		t.Error("envelope identity fields do not match the input")
	}
	if env.SourceLocation != in.SourceLocation || env.MediaType != in.MediaType || env.CategoryType != in.CategoryType {
		t.Error("envelope payload fields do not match the input")
	}

	if len(repo.SetStatusCalls) != 1 {
		t.Fatalf("SetStatus called %d times; want 1", len(repo.SetStatusCalls))
	}
	call := repo.SetStatusCalls[0]
	if call.From != model.MediaStatusUploading || call.To != model.MediaStatusProcessing {
		t.Errorf("transition %s→%s; want UPLOADING→PROCESSING", call.From, call.To)
	}
}

func TestPublishUpload_EnqueueFails(t *testing.T) {
	pubErr := errors.New("broker down")
	repo := &mock.MockMediaRepo{}
	pub := &mock.Publisher{ProcessErr: pubErr}
	svc := NewUploadPublisher(repo, pub)

	in := publishInput()
	err := svc.PublishUpload(context.Background(), in)
	if !errors.Is(err, pubErr) {
		t.Fatalf("got %v; want wrapped broker error", err)
	}

	if repo.FailedID != in.MediaID {
		t.Error("asset was not marked FAILED after publish failure")
	}
	if !strings.Contains(repo.FailedReason, "publish failed") {
		t.Errorf("failure reason = %q; want publish failure note", repo.FailedReason)
	}
	if len(repo.SetStatusCalls) != 0 {
		t.Error("status must not advance when publishing fails")
	}
}

func TestPublishUpload_StatusUpdateFails(t *testing.T) {
	statusErr := errors.New("db gone")
	repo := &mock.MockMediaRepo{SetStatusErr: statusErr}
	pub := &mock.Publisher{}
	svc := NewUploadPublisher(repo, pub)

	err := svc.PublishUpload(context.Background(), publishInput())
	if !errors.Is(err, statusErr) {
		t.Fatalf("got %v; want wrapped status error", err)
	}
	if len(pub.Published) != 1 {
		t.Error("message should already be on the queue")
	}
}
