package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type mediaGetterSrv struct {
	repo port.MediaAssetRepository
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

func NewMediaGetter(repo port.MediaAssetRepository) port.MediaGetter {
	return &mediaGetterSrv{repo: repo}
}

// GetMedia returns the asset so the uploader can poll processing status;
// the transform outcome is never synchronously observable.
func (s *mediaGetterSrv) GetMedia(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}
