package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type profileSynchronizer struct{}

var _ port.Synchronizer = (*profileSynchronizer)(nil)

func NewProfileSynchronizer() port.Synchronizer {
	return &profileSynchronizer{}
}

// Sync copies the staged profile fields into the authoritative kitchen row
// and marks the staging row APPROVED.
func (p *profileSynchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	staging, err := s.Kitchens().GetStagingByKitchenID(ctx, req.EntityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: staging profile for kitchen #%s", ErrStagingNotFound, req.EntityID)
		}
		return err
	}

	kitchen, err := s.Kitchens().GetByID(ctx, req.EntityID)
	if err != nil {
		return fmt.Errorf("failed loading kitchen #%s: %w", req.EntityID, err)
	}

	kitchen.Name = staging.Name
	kitchen.Tagline = staging.Tagline
	kitchen.Bio = staging.Bio
	kitchen.HasLogo = staging.HasLogo
	if err := s.Kitchens().UpdateProfile(ctx, kitchen); err != nil {
		return fmt.Errorf("failed updating kitchen #%s profile: %w", kitchen.ID, err)
	}

	if err := s.Kitchens().MarkStagingApproved(ctx, staging.ID); err != nil {
		return fmt.Errorf("failed approving staging profile #%s: %w", staging.ID, err)
	}
	return nil
}
