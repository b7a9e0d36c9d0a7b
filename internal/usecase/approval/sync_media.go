package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type mediaSynchronizer struct{}

var _ port.Synchronizer = (*mediaSynchronizer)(nil)

func NewMediaSynchronizer() port.Synchronizer {
	return &mediaSynchronizer{}
}

// Sync flips the media asset from PROCESSED to APPROVED. No bytes move: the
// derivatives already sit at their final storage keys since processing.
func (m *mediaSynchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	if req.SubEntityID == nil {
		return fmt.Errorf("%w: media request #%s has no sub-entity id", ErrStagingNotFound, req.ID)
	}

	asset, err := s.MediaAssets().GetByID(ctx, *req.SubEntityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: media asset #%s", ErrStagingNotFound, *req.SubEntityID)
		}
		return err
	}
	if asset.Status == model.MediaStatusApproved {
		return nil
	}

	changed, err := s.MediaAssets().SetStatus(ctx, asset.ID, model.MediaStatusProcessed, model.MediaStatusApproved)
	if err != nil {
		return fmt.Errorf("failed approving media asset #%s: %w", asset.ID, err)
	}
	if !changed {
		return fmt.Errorf("%w: media asset #%s is %s, not PROCESSED", ErrStagingNotFound, asset.ID, asset.Status)
	}
	return nil
}
