package approval

import (
	"context"
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type kitchenSynchronizer struct {
	profile port.Synchronizer
}

var _ port.Synchronizer = (*kitchenSynchronizer)(nil)

func NewKitchenSynchronizer() port.Synchronizer {
	return &kitchenSynchronizer{profile: NewProfileSynchronizer()}
}

// Sync handles the initial-creation workflow: profile plus all staged
// addresses plus all staged availability slots in one transaction, then the
// kitchen itself goes live. Used exactly once per kitchen.
func (k *kitchenSynchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	if err := k.profile.Sync(ctx, s, req); err != nil {
		return err
	}

	addresses, err := s.Addresses().ListStagingByKitchenID(ctx, req.EntityID)
	if err != nil {
		return fmt.Errorf("failed listing staged addresses for kitchen #%s: %w", req.EntityID, err)
	}
	var drafts []*model.StagingKitchenAddress
	for _, staging := range addresses {
		if staging.Status == model.StagingStatusDraft {
			drafts = append(drafts, staging)
		}
	}
	// one sweep before the upserts, so an earlier upsert in the same batch is
	// not deactivated by a later iteration
	if len(drafts) > 0 {
		if err := s.Addresses().DeactivateAll(ctx, req.EntityID); err != nil {
			return fmt.Errorf("failed deactivating addresses for kitchen #%s: %w", req.EntityID, err)
		}
	}
	for _, staging := range drafts {
		addressID, err := s.Addresses().UpsertActive(ctx, staging)
		if err != nil {
			return fmt.Errorf("failed upserting address for kitchen #%s: %w", staging.KitchenID, err)
		}
		if err := s.Addresses().MarkStagingApproved(ctx, staging.ID, addressID); err != nil {
			return fmt.Errorf("failed approving staging address #%s: %w", staging.ID, err)
		}
	}

	slots, err := s.Availability().ListStagingByKitchenID(ctx, req.EntityID)
	if err != nil {
		return fmt.Errorf("failed listing staged availability for kitchen #%s: %w", req.EntityID, err)
	}
	if err := syncAvailabilityRows(ctx, s, slots); err != nil {
		return err
	}

	if err := s.Kitchens().SetStatus(ctx, req.EntityID, model.KitchenStatusApproved); err != nil {
		return fmt.Errorf("failed setting kitchen #%s live: %w", req.EntityID, err)
	}
	return nil
}
