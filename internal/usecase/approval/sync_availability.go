package approval

import (
	"context"
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type availabilitySynchronizer struct{}

var _ port.Synchronizer = (*availabilitySynchronizer)(nil)

func NewAvailabilitySynchronizer() port.Synchronizer {
	return &availabilitySynchronizer{}
}

// Sync upserts every staged DRAFT slot into the authoritative table by its
// (kitchen, weekday, slot) natural key. The staging row's pointer to the
// authoritative row is back-filled on each upsert, so re-running the sync for
// the same slots is idempotent.
func (a *availabilitySynchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	staged, err := s.Availability().ListStagingByKitchenID(ctx, req.EntityID)
	if err != nil {
		return fmt.Errorf("failed listing staged availability for kitchen #%s: %w", req.EntityID, err)
	}
	if len(staged) == 0 {
		return fmt.Errorf("%w: no staged availability for kitchen #%s", ErrStagingNotFound, req.EntityID)
	}

	return syncAvailabilityRows(ctx, s, staged)
}

func syncAvailabilityRows(ctx context.Context, s port.SyncStore, staged []*model.StagingKitchenAvailability) error {
	for _, slot := range staged {
		if slot.Status != model.StagingStatusDraft {
			continue
		}
		syncedID, err := s.Availability().UpsertSlot(ctx, slot)
		if err != nil {
			return fmt.Errorf("failed upserting slot %s/%s for kitchen #%s: %w", slot.Weekday, slot.Slot, slot.KitchenID, err)
		}
		if err := s.Availability().MarkStagingApproved(ctx, slot.ID, syncedID); err != nil {
			return fmt.Errorf("failed approving staging slot #%s: %w", slot.ID, err)
		}
	}
	return nil
}
