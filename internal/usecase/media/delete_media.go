package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type deleteMediaSrv struct {
	repo   port.MediaAssetRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *deleteMediaSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*deleteMediaSrv)(nil)

func NewMediaDeleter(repo port.MediaAssetRepository, strg port.Storage, bucket string) port.MediaDeleter {
	return &deleteMediaSrv{repo: repo, strg: strg, bucket: bucket}
}

// DeleteMedia removes the stored objects and soft-deletes the row. The row
// outlives its files so change-request history keeps resolving.
func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAssetNotFound
		}
		return err
	}

	if asset.ProcessedKey != nil {
		if err := s.strg.RemoveFile(ctx, s.bucket, *asset.ProcessedKey); err != nil {
			log.Printf("failed to remove derivative %q: %v", *asset.ProcessedKey, err)
		}
	}
	if asset.ThumbnailKey != nil {
		if err := s.strg.RemoveFile(ctx, s.bucket, *asset.ThumbnailKey); err != nil {
			log.Printf("failed to remove thumbnail %q: %v", *asset.ThumbnailKey, err)
		}
	}

	if err := s.strg.RemoveFile(ctx, s.bucket, asset.OriginalKey); err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, asset.ID)
}
