package mock

import (
	"context"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// MockChangeRequestRepo implements port.ChangeRequestRepository for tests.
type MockChangeRequestRepo struct {
	Record  *model.ChangeRequest
	Open    *model.ChangeRequest
	ListOut []*model.ChangeRequest

	GetErr      error
	CreateErr   error
	ListErr     error
	FindOpenErr error
	FinaliseErr error
	FinaliseWon bool

	GetCalled      bool
	Created        *model.ChangeRequest
	ListFilter     port.ChangeRequestFilter
	FindOpenCalled bool
	FinalisedID    uuid.UUID
	FinalStatus    model.ChangeRequestStatus
	FinalReviewer  uuid.UUID
	FinalReason    *string
}

func (m *MockChangeRequestRepo) Create(ctx context.Context, req *model.ChangeRequest) error {
	m.Created = req
	return m.CreateErr
}

func (m *MockChangeRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Record, nil
}

func (m *MockChangeRequestRepo) List(ctx context.Context, filter port.ChangeRequestFilter) ([]*model.ChangeRequest, error) {
	m.ListFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockChangeRequestRepo) FindOpen(ctx context.Context, entityName string, entityID uuid.UUID, subEntityID *uuid.UUID, action string) (*model.ChangeRequest, error) {
	m.FindOpenCalled = true
	if m.FindOpenErr != nil {
		return nil, m.FindOpenErr
	}
	return m.Open, nil
}

func (m *MockChangeRequestRepo) Finalise(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, reviewedBy uuid.UUID, reviewedAt time.Time, reason *string) (bool, error) {
	m.FinalisedID = id
	m.FinalStatus = status
	m.FinalReviewer = reviewedBy
	m.FinalReason = reason
	if m.FinaliseErr != nil {
		return false, m.FinaliseErr
	}
	return m.FinaliseWon, nil
}
