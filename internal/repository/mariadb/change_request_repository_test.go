package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func binary(id uuid.UUID) []byte {
	v, err := id.Value()
	if err != nil {
		panic(err)
	}
	return v.([]byte)
}

func changeRequestRows(req *model.ChangeRequest) *sqlmock.Rows {
	cols := []string{
		"id", "entity_name", "entity_id", "sub_entity_name", "sub_entity_id",
		"action", "status", "requested_by", "requested_role", "workflow_id",
		"reason", "reviewed_by", "reviewed_at", "created_at", "updated_at",
	}
	var subID any
	if req.SubEntityID != nil {
		subID = binary(*req.SubEntityID)
	}
	return sqlmock.NewRows(cols).AddRow(
		binary(req.ID), req.EntityName, binary(req.EntityID), req.SubEntityName, subID,
		req.Action, string(req.Status), binary(req.RequestedBy), req.RequestedRole, req.WorkflowID,
		req.Reason, nil, nil, req.CreatedAt, req.UpdatedAt,
	)
}

func TestChangeRequestRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	subName := model.SubEntityKitchenMedia
	subID := uuid.NewUUID()
	req := &model.ChangeRequest{
		ID:            uuid.NewUUID(),
		EntityName:    model.EntityKitchen,
		EntityID:      uuid.NewUUID(),
		SubEntityName: &subName,
		SubEntityID:   &subID,
		Action:        model.ActionKitchenMediaUploaded,
		Status:        model.ChangeRequestStatusInitiated,
		RequestedBy:   uuid.NewUUID(),
		RequestedRole: "KITCHEN_OWNER",
		WorkflowID:    "media-upload-123",
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO change_requests
        (id, entity_name, entity_id, sub_entity_name, sub_entity_id, action, status, requested_by, requested_role, workflow_id, reason)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(
			req.ID, req.EntityName, req.EntityID, req.SubEntityName, req.SubEntityID,
			req.Action, req.Status, req.RequestedBy, req.RequestedRole,
			req.WorkflowID, req.Reason,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), req); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestChangeRequestRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	req := &model.ChangeRequest{
		ID:            uuid.NewUUID(),
		EntityName:    model.EntityKitchen,
		EntityID:      uuid.NewUUID(),
		Action:        model.ActionKitchenProfileUpdated,
		Status:        model.ChangeRequestStatusInitiated,
		RequestedBy:   uuid.NewUUID(),
		RequestedRole: "KITCHEN_OWNER",
		WorkflowID:    "profile-update-456",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	mock.ExpectQuery("SELECT (.+) FROM change_requests").
		WithArgs(req.ID).
		WillReturnRows(changeRequestRows(req))

	got, err := repo.GetByID(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if got.ID != req.ID {
		t.Errorf("id = %s; want %s", got.ID, req.ID)
	}
	if got.Status != model.ChangeRequestStatusInitiated {
		t.Errorf("status = %q; want %q", got.Status, model.ChangeRequestStatusInitiated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestChangeRequestRepository_GetByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	id := uuid.NewUUID()
	mock.ExpectQuery("SELECT (.+) FROM change_requests").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), id)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("got %v; want sql.ErrNoRows", err)
	}
}

func TestChangeRequestRepository_List_Filters(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	entityID := uuid.NewUUID()
	req := &model.ChangeRequest{
		ID:            uuid.NewUUID(),
		EntityName:    model.EntityKitchen,
		EntityID:      entityID,
		Action:        model.ActionKitchenProfileUpdated,
		Status:        model.ChangeRequestStatusInitiated,
		RequestedBy:   uuid.NewUUID(),
		RequestedRole: "KITCHEN_OWNER",
		WorkflowID:    "profile-update-789",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	mock.ExpectQuery("SELECT (.+) FROM change_requests").
		WithArgs(model.EntityKitchen, entityID, string(model.ChangeRequestStatusInitiated), 50, 0).
		WillReturnRows(changeRequestRows(req))

	got, err := repo.List(context.Background(), port.ChangeRequestFilter{
		EntityName: model.EntityKitchen,
		EntityID:   &entityID,
		Status:     model.ChangeRequestStatusInitiated,
		Limit:      50,
	})
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d change requests; want 1", len(got))
	}
	if got[0].ID != req.ID {
		t.Errorf("id = %s; want %s", got[0].ID, req.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestChangeRequestRepository_FindOpen_NoRowsMeansNil(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	entityID := uuid.NewUUID()
	mock.ExpectQuery("SELECT (.+) FROM change_requests").
		WithArgs(model.EntityKitchen, entityID, model.ActionKitchenMediaUploaded, string(model.ChangeRequestStatusInitiated)).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.FindOpen(context.Background(), model.EntityKitchen, entityID, nil, model.ActionKitchenMediaUploaded)
	if err != nil {
		t.Fatalf("FindOpen() returned unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v; want nil when no open request exists", got)
	}
}

func TestChangeRequestRepository_Finalise_Won(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	id := uuid.NewUUID()
	reviewer := uuid.NewUUID()
	reviewedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE change_requests").
		WithArgs(string(model.ChangeRequestStatusApproved), reviewer, reviewedAt, nil, id, string(model.ChangeRequestStatusInitiated)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.Finalise(context.Background(), id, model.ChangeRequestStatusApproved, reviewer, reviewedAt, nil)
	if err != nil {
		t.Fatalf("Finalise() returned unexpected error: %v", err)
	}
	if !won {
		t.Error("expected the update to win when one row was affected")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestChangeRequestRepository_Finalise_Lost(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewChangeRequestRepository(sqlDB)

	id := uuid.NewUUID()
	reviewer := uuid.NewUUID()
	reason := "duplicate submission"

	mock.ExpectExec("UPDATE change_requests").
		WithArgs(string(model.ChangeRequestStatusRejected), reviewer, sqlmock.AnyArg(), &reason, id, string(model.ChangeRequestStatusInitiated)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.Finalise(context.Background(), id, model.ChangeRequestStatusRejected, reviewer, time.Now().UTC(), &reason)
	if err != nil {
		t.Fatalf("Finalise() returned unexpected error: %v", err)
	}
	if won {
		t.Error("expected the update to lose when no row was affected")
	}
}
