package mariadb

import (
	"context"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type AddressRepository struct {
	db db.Queryer
}

// compile-time check: *AddressRepository must satisfy port.AddressRepository
var _ port.AddressRepository = (*AddressRepository)(nil)

func NewAddressRepository(q db.Queryer) *AddressRepository {
	return &AddressRepository{db: q}
}

const stagingAddressColumns = `id, kitchen_id, address_id, line1, line2, city, region, postal_code, status, created_at, updated_at`

func (r *AddressRepository) GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAddress, error) {
	log.Printf("fetching staging address #%s...", stagingID)

	const query = `
      SELECT ` + stagingAddressColumns + `
      FROM staging_kitchen_addresses
      WHERE id = ?
    `
	return scanStagingAddress(r.db.QueryRowContext(ctx, query, stagingID))
}

func (r *AddressRepository) ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAddress, error) {
	const query = `
      SELECT ` + stagingAddressColumns + `
      FROM staging_kitchen_addresses
      WHERE kitchen_id = ?
      ORDER BY created_at
    `
	rows, err := r.db.QueryContext(ctx, query, kitchenID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.StagingKitchenAddress
	for rows.Next() {
		s, err := scanStagingAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *AddressRepository) DeactivateAll(ctx context.Context, kitchenID uuid.UUID) error {
	log.Printf("deactivating all active addresses of kitchen #%s...", kitchenID)

	const query = `
      UPDATE kitchen_addresses
      SET status = ?
      WHERE kitchen_id = ? AND status = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.AddressStatusInactive, kitchenID, model.AddressStatusActive)
	return err
}

// UpsertActive writes the staged address into the authoritative table as
// ACTIVE. A staging row that already synced once updates the same
// authoritative row; a fresh one gets a new id.
func (r *AddressRepository) UpsertActive(ctx context.Context, staging *model.StagingKitchenAddress) (uuid.UUID, error) {
	if staging.AddressID != nil {
		const query = `
          UPDATE kitchen_addresses
          SET line1 = ?, line2 = ?, city = ?, region = ?, postal_code = ?, status = ?
          WHERE id = ?
        `
		res, err := r.db.ExecContext(ctx, query,
			staging.Line1, staging.Line2, staging.City, staging.Region,
			staging.PostalCode, model.AddressStatusActive, *staging.AddressID,
		)
		if err != nil {
			return uuid.UUID{}, err
		}
		if n, err := res.RowsAffected(); err == nil && n == 1 {
			return *staging.AddressID, nil
		}
		// back-reference points at a row that no longer exists; fall
		// through and insert a fresh one
		log.Printf("staging address #%s references missing address #%s, inserting anew", staging.ID, *staging.AddressID)
	}

	id := uuid.NewUUID()
	const query = `
      INSERT INTO kitchen_addresses
        (id, kitchen_id, line1, line2, city, region, postal_code, status)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		id, staging.KitchenID, staging.Line1, staging.Line2, staging.City,
		staging.Region, staging.PostalCode, model.AddressStatusActive,
	)
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

func (r *AddressRepository) MarkStagingApproved(ctx context.Context, stagingID, addressID uuid.UUID) error {
	const query = `
      UPDATE staging_kitchen_addresses
      SET status = ?, address_id = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.StagingStatusApproved, addressID, stagingID)
	return err
}

func scanStagingAddress(row rowScanner) (*model.StagingKitchenAddress, error) {
	var s model.StagingKitchenAddress
	if err := row.Scan(
		&s.ID, &s.KitchenID, &s.AddressID, &s.Line1, &s.Line2,
		&s.City, &s.Region, &s.PostalCode, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
