package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type ChangeRequestRepository struct {
	db db.Queryer
}

// compile-time check: *ChangeRequestRepository must satisfy port.ChangeRequestRepository
var _ port.ChangeRequestRepository = (*ChangeRequestRepository)(nil)

func NewChangeRequestRepository(q db.Queryer) *ChangeRequestRepository {
	return &ChangeRequestRepository{db: q}
}

const changeRequestColumns = `id, entity_name, entity_id, sub_entity_name, sub_entity_id, action, status, requested_by, requested_role, workflow_id, reason, reviewed_by, reviewed_at, created_at, updated_at`

func (r *ChangeRequestRepository) Create(ctx context.Context, req *model.ChangeRequest) error {
	log.Printf("creating change request #%s for %s/%s...", req.ID, req.EntityName, req.Action)

	const query = `
      INSERT INTO change_requests
        (id, entity_name, entity_id, sub_entity_name, sub_entity_id, action, status, requested_by, requested_role, workflow_id, reason)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.EntityName, req.EntityID, req.SubEntityName, req.SubEntityID,
		req.Action, req.Status, req.RequestedBy, req.RequestedRole,
		req.WorkflowID, req.Reason,
	)
	return err
}

func (r *ChangeRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	log.Printf("fetching change request #%s from the database...", id)

	const query = `
      SELECT ` + changeRequestColumns + `
      FROM change_requests
      WHERE id = ?
    `
	return scanChangeRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *ChangeRequestRepository) List(ctx context.Context, filter port.ChangeRequestFilter) ([]*model.ChangeRequest, error) {
	log.Printf("listing change requests...")

	query := `
      SELECT ` + changeRequestColumns + `
      FROM change_requests
      WHERE 1=1
    `
	var args []any
	if filter.EntityName != "" {
		query += " AND entity_name = ?"
		args = append(args, filter.EntityName)
	}
	if filter.EntityID != nil {
		query += " AND entity_id = ?"
		args = append(args, *filter.EntityID)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += `
      ORDER BY (status = 'INITIATED') DESC, created_at DESC
      LIMIT ? OFFSET ?
    `
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.ChangeRequest
	for rows.Next() {
		req, err := scanChangeRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *ChangeRequestRepository) FindOpen(ctx context.Context, entityName string, entityID uuid.UUID, subEntityID *uuid.UUID, action string) (*model.ChangeRequest, error) {
	query := `
      SELECT ` + changeRequestColumns + `
      FROM change_requests
      WHERE entity_name = ? AND entity_id = ? AND action = ? AND status = ?
    `
	args := []any{entityName, entityID, action, model.ChangeRequestStatusInitiated}
	if subEntityID != nil {
		query += " AND sub_entity_id = ?"
		args = append(args, *subEntityID)
	}
	query += " LIMIT 1"

	req, err := scanChangeRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Finalise applies the terminal transition only while the row is still
// INITIATED. The caller treats zero rows affected as a concurrency conflict.
func (r *ChangeRequestRepository) Finalise(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, reviewedBy uuid.UUID, reviewedAt time.Time, reason *string) (bool, error) {
	log.Printf("finalising change request #%s as %q...", id, status)

	const query = `
      UPDATE change_requests
      SET status = ?, reviewed_by = ?, reviewed_at = ?, reason = COALESCE(?, reason)
      WHERE id = ? AND status = ?
    `
	res, err := r.db.ExecContext(ctx, query, status, reviewedBy, reviewedAt, reason, id, model.ChangeRequestStatusInitiated)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChangeRequest(row rowScanner) (*model.ChangeRequest, error) {
	var req model.ChangeRequest
	if err := row.Scan(
		&req.ID, &req.EntityName, &req.EntityID, &req.SubEntityName, &req.SubEntityID,
		&req.Action, &req.Status, &req.RequestedBy, &req.RequestedRole,
		&req.WorkflowID, &req.Reason, &req.ReviewedBy, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}
