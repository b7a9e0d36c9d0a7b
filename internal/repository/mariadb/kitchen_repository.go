package mariadb

import (
	"context"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type KitchenRepository struct {
	db db.Queryer
}

// compile-time check: *KitchenRepository must satisfy port.KitchenRepository
var _ port.KitchenRepository = (*KitchenRepository)(nil)

func NewKitchenRepository(q db.Queryer) *KitchenRepository {
	return &KitchenRepository{db: q}
}

func (r *KitchenRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Kitchen, error) {
	log.Printf("fetching kitchen #%s from the database...", id)

	const query = `
      SELECT id, name, tagline, bio, has_logo, status, created_at, updated_at
      FROM kitchens
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var k model.Kitchen
	if err := row.Scan(
		&k.ID, &k.Name, &k.Tagline, &k.Bio, &k.HasLogo,
		&k.Status, &k.CreatedAt, &k.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *KitchenRepository) UpdateProfile(ctx context.Context, kitchen *model.Kitchen) error {
	log.Printf("updating profile of kitchen #%s...", kitchen.ID)

	const query = `
      UPDATE kitchens
      SET name = ?, tagline = ?, bio = ?, has_logo = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		kitchen.Name, kitchen.Tagline, kitchen.Bio, kitchen.HasLogo, kitchen.ID,
	)
	return err
}

func (r *KitchenRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.KitchenStatus) error {
	log.Printf("updating kitchen #%s status to %q...", id, status)

	const query = `
      UPDATE kitchens
      SET status = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *KitchenRepository) GetStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) (*model.StagingKitchen, error) {
	log.Printf("fetching staging profile for kitchen #%s...", kitchenID)

	const query = `
      SELECT id, kitchen_id, name, tagline, bio, has_logo, status, created_at, updated_at
      FROM staging_kitchens
      WHERE kitchen_id = ?
    `
	row := r.db.QueryRowContext(ctx, query, kitchenID)
	var s model.StagingKitchen
	if err := row.Scan(
		&s.ID, &s.KitchenID, &s.Name, &s.Tagline, &s.Bio, &s.HasLogo,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *KitchenRepository) MarkStagingApproved(ctx context.Context, stagingID uuid.UUID) error {
	const query = `
      UPDATE staging_kitchens
      SET status = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.StagingStatusApproved, stagingID)
	return err
}
