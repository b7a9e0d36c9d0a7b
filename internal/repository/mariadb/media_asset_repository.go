package mariadb

import (
	"context"
	"fmt"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type MediaAssetRepository struct {
	db db.Queryer
}

// compile-time check: *MediaAssetRepository must satisfy port.MediaAssetRepository
var _ port.MediaAssetRepository = (*MediaAssetRepository)(nil)

func NewMediaAssetRepository(q db.Queryer) *MediaAssetRepository {
	return &MediaAssetRepository{db: q}
}

func (r *MediaAssetRepository) Create(ctx context.Context, asset *model.MediaAsset) error {
	log.Printf("creating database record for media #%s, at status %q...", asset.ID, asset.Status)

	const query = `
      INSERT INTO media_assets
        (id, kitchen_id, media_type, category_type, status, original_key, processed_key, thumbnail_key, failure_message)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.KitchenID, asset.MediaType, asset.CategoryType,
		asset.Status, asset.OriginalKey, asset.ProcessedKey,
		asset.ThumbnailKey, asset.FailureMessage,
	)
	return err
}

func (r *MediaAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error) {
	log.Printf("fetching media #%s from the database...", id)

	const query = `
      SELECT id, kitchen_id, media_type, category_type, status, original_key, processed_key, thumbnail_key, failure_message, created_at, updated_at, deleted_at
      FROM media_assets
      WHERE id = ? AND deleted_at IS NULL
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var asset model.MediaAsset
	if err := row.Scan(
		&asset.ID, &asset.KitchenID, &asset.MediaType, &asset.CategoryType,
		&asset.Status, &asset.OriginalKey, &asset.ProcessedKey,
		&asset.ThumbnailKey, &asset.FailureMessage,
		&asset.CreatedAt, &asset.UpdatedAt, &asset.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &asset, nil
}

// SetStatus moves the row from one status to another. Conditioning on the
// current status keeps transitions monotonic under concurrent consumers.
func (r *MediaAssetRepository) SetStatus(ctx context.Context, id uuid.UUID, from, to model.MediaStatus) (bool, error) {
	log.Printf("updating media #%s status %q → %q...", id, from, to)

	const query = `
      UPDATE media_assets
      SET status = ?
      WHERE id = ? AND status = ? AND deleted_at IS NULL
    `
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// SetDerivatives writes the derivative keys and flips the row to UPLOADED,
// but only while the row still sits at PROCESSING or UPLOADED. A row another
// consumer already pushed to PROCESSED or APPROVED is left untouched and the
// caller sees zero rows changed.
func (r *MediaAssetRepository) SetDerivatives(ctx context.Context, id uuid.UUID, processedKey string, thumbnailKey *string) (bool, error) {
	log.Printf("persisting derivative keys for media #%s...", id)

	const query = `
      UPDATE media_assets
      SET processed_key = ?, thumbnail_key = ?, status = ?
      WHERE id = ? AND status IN (?, ?) AND deleted_at IS NULL
    `
	res, err := r.db.ExecContext(ctx, query,
		processedKey, thumbnailKey, model.MediaStatusUploaded,
		id, model.MediaStatusProcessing, model.MediaStatusUploaded,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *MediaAssetRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	log.Printf("marking media #%s as failed: %s", id, reason)

	const query = `
      UPDATE media_assets
      SET status = ?, failure_message = ?
      WHERE id = ? AND deleted_at IS NULL
    `
	_, err := r.db.ExecContext(ctx, query, model.MediaStatusFailed, reason, id)
	return err
}

func (r *MediaAssetRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log.Printf("soft-deleting media #%s...", id)

	const query = `
      UPDATE media_assets
      SET status = ?, deleted_at = NOW()
      WHERE id = ? AND deleted_at IS NULL
    `
	res, err := r.db.ExecContext(ctx, query, model.MediaStatusDeleted, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("media #%s not found or already deleted", id)
	}
	return nil
}
