package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type AvailabilityRepository struct {
	db db.Queryer
}

// compile-time check: *AvailabilityRepository must satisfy port.AvailabilityRepository
var _ port.AvailabilityRepository = (*AvailabilityRepository)(nil)

func NewAvailabilityRepository(q db.Queryer) *AvailabilityRepository {
	return &AvailabilityRepository{db: q}
}

const stagingAvailabilityColumns = `id, kitchen_id, weekday, slot, opens_at, closes_at, synced_id, status, created_at, updated_at`

func (r *AvailabilityRepository) GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAvailability, error) {
	log.Printf("fetching staging availability slot #%s...", stagingID)

	const query = `
      SELECT ` + stagingAvailabilityColumns + `
      FROM staging_kitchen_availability
      WHERE id = ?
    `
	return scanStagingAvailability(r.db.QueryRowContext(ctx, query, stagingID))
}

func (r *AvailabilityRepository) ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAvailability, error) {
	const query = `
      SELECT ` + stagingAvailabilityColumns + `
      FROM staging_kitchen_availability
      WHERE kitchen_id = ?
      ORDER BY weekday, slot
    `
	rows, err := r.db.QueryContext(ctx, query, kitchenID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.StagingKitchenAvailability
	for rows.Next() {
		s, err := scanStagingAvailability(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpsertSlot writes the staged slot into the authoritative table. The
// (kitchen, weekday, slot) tuple is the natural key, so a slot approved twice
// updates in place and returns the same id both times.
func (r *AvailabilityRepository) UpsertSlot(ctx context.Context, staging *model.StagingKitchenAvailability) (uuid.UUID, error) {
	const selectQuery = `
      SELECT id
      FROM kitchen_availability
      WHERE kitchen_id = ? AND weekday = ? AND slot = ?
    `
	var existing uuid.UUID
	err := r.db.QueryRowContext(ctx, selectQuery, staging.KitchenID, staging.Weekday, staging.Slot).Scan(&existing)
	switch {
	case err == nil:
		const updateQuery = `
          UPDATE kitchen_availability
          SET opens_at = ?, closes_at = ?
          WHERE id = ?
        `
		if _, err := r.db.ExecContext(ctx, updateQuery, staging.OpensAt, staging.ClosesAt, existing); err != nil {
			return uuid.UUID{}, err
		}
		return existing, nil
	case errors.Is(err, sql.ErrNoRows):
		id := uuid.NewUUID()
		const insertQuery = `
          INSERT INTO kitchen_availability
            (id, kitchen_id, weekday, slot, opens_at, closes_at)
          VALUES (?, ?, ?, ?, ?, ?)
        `
		if _, err := r.db.ExecContext(ctx, insertQuery,
			id, staging.KitchenID, staging.Weekday, staging.Slot,
			staging.OpensAt, staging.ClosesAt,
		); err != nil {
			return uuid.UUID{}, err
		}
		return id, nil
	default:
		return uuid.UUID{}, err
	}
}

func (r *AvailabilityRepository) MarkStagingApproved(ctx context.Context, stagingID, syncedID uuid.UUID) error {
	const query = `
      UPDATE staging_kitchen_availability
      SET status = ?, synced_id = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.StagingStatusApproved, syncedID, stagingID)
	return err
}

func scanStagingAvailability(row rowScanner) (*model.StagingKitchenAvailability, error) {
	var s model.StagingKitchenAvailability
	if err := row.Scan(
		&s.ID, &s.KitchenID, &s.Weekday, &s.Slot,
		&s.OpensAt, &s.ClosesAt, &s.SyncedID, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
