package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type addressSynchronizer struct{}

var _ port.Synchronizer = (*addressSynchronizer)(nil)

func NewAddressSynchronizer() port.Synchronizer {
	return &addressSynchronizer{}
}

// Sync deactivates every ACTIVE address of the kitchen, then upserts the
// staged one as ACTIVE. The single-active-address invariant is enforced here,
// at sync time, regardless of how many active rows existed before.
func (a *addressSynchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	if req.SubEntityID == nil {
		return fmt.Errorf("%w: address request #%s has no sub-entity id", ErrStagingNotFound, req.ID)
	}

	staging, err := s.Addresses().GetStagingByID(ctx, *req.SubEntityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: staging address #%s", ErrStagingNotFound, *req.SubEntityID)
		}
		return err
	}

	if err := s.Addresses().DeactivateAll(ctx, staging.KitchenID); err != nil {
		return fmt.Errorf("failed deactivating addresses for kitchen #%s: %w", staging.KitchenID, err)
	}

	addressID, err := s.Addresses().UpsertActive(ctx, staging)
	if err != nil {
		return fmt.Errorf("failed upserting address for kitchen #%s: %w", staging.KitchenID, err)
	}

	if err := s.Addresses().MarkStagingApproved(ctx, staging.ID, addressID); err != nil {
		return fmt.Errorf("failed approving staging address #%s: %w", staging.ID, err)
	}
	return nil
}
