package approval

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/mock"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func mediaRequest(kitchenID uuid.UUID, mediaID *uuid.UUID) *model.ChangeRequest {
	sub := model.SubEntityKitchenMedia
	return &model.ChangeRequest{
		ID:            uuid.NewUUID(),
		EntityName:    model.EntityKitchen,
		EntityID:      kitchenID,
		SubEntityName: &sub,
		SubEntityID:   mediaID,
		Action:        model.ActionKitchenMediaUploaded,
		Status:        model.ChangeRequestStatusInitiated,
	}
}

func TestMediaSync_FlipsProcessedToApproved(t *testing.T) {
	kitchenID := uuid.NewUUID()
	mediaID := uuid.NewUUID()
	s := mock.NewSyncStore()
	s.MediaRepo.AssetRecord = &model.MediaAsset{
		ID:        mediaID,
		KitchenID: kitchenID,
		Status:    model.MediaStatusProcessed,
	}
	s.MediaRepo.SetStatusChanged = true

	err := NewMediaSynchronizer().Sync(context.Background(), s, mediaRequest(kitchenID, &mediaID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.MediaRepo.SetStatusCalls) != 1 {
		t.Fatalf("SetStatus called %d times; want 1", len(s.MediaRepo.SetStatusCalls))
	}
	call := s.MediaRepo.SetStatusCalls[0]
	if call.From != model.MediaStatusProcessed || call.To != model.MediaStatusApproved {
		t.Errorf("transition %s→%s; want PROCESSED→APPROVED", call.From, call.To)
	}
}

func TestMediaSync_AlreadyApprovedIsNoop(t *testing.T) {
	kitchenID := uuid.NewUUID()
	mediaID := uuid.NewUUID()
	s := mock.NewSyncStore()
	s.MediaRepo.AssetRecord = &model.MediaAsset{
		ID:        mediaID,
		KitchenID: kitchenID,
		Status:    model.MediaStatusApproved,
	}

	err := NewMediaSynchronizer().Sync(context.Background(), s, mediaRequest(kitchenID, &mediaID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.MediaRepo.SetStatusCalls) != 0 {
		t.Error("already approved asset should not be touched")
	}
}

func TestMediaSync_AssetNotProcessed(t *testing.T) {
	kitchenID := uuid.NewUUID()
	mediaID := uuid.NewUUID()
	s := mock.NewSyncStore()
	s.MediaRepo.AssetRecord = &model.MediaAsset{
		ID:        mediaID,
		KitchenID: kitchenID,
		Status:    model.MediaStatusProcessing,
	}
	s.MediaRepo.SetStatusChanged = false

	err := NewMediaSynchronizer().Sync(context.Background(), s, mediaRequest(kitchenID, &mediaID))
	if !errors.Is(err, ErrStagingNotFound) {
		t.Fatalf("got %v; want ErrStagingNotFound", err)
	}
}

func TestMediaSync_AssetGone(t *testing.T) {
	mediaID := uuid.NewUUID()
	s := mock.NewSyncStore()
	s.MediaRepo.GetErr = sql.ErrNoRows

	err := NewMediaSynchronizer().Sync(context.Background(), s, mediaRequest(uuid.NewUUID(), &mediaID))
	if !errors.Is(err, ErrStagingNotFound) {
		t.Fatalf("got %v; want ErrStagingNotFound", err)
	}
}

func TestMediaSync_MissingSubEntityID(t *testing.T) {
	s := mock.NewSyncStore()

	err := NewMediaSynchronizer().Sync(context.Background(), s, mediaRequest(uuid.NewUUID(), nil))
	if !errors.Is(err, ErrStagingNotFound) {
		t.Fatalf("got %v; want ErrStagingNotFound", err)
	}
	if s.MediaRepo.GetCalled {
		t.Error("no lookup should happen without a sub-entity id")
	}
}
