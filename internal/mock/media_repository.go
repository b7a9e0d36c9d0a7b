package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// MockMediaRepo implements port.MediaAssetRepository for tests.
type MockMediaRepo struct {
	AssetRecord *model.MediaAsset
	// RereadRecord, when set, is returned by every GetByID after the first,
	// standing in for a row another consumer advanced mid-flight.
	RereadRecord *model.MediaAsset

	GetErr            error
	CreateErr         error
	SetStatusErr          error
	SetStatusChanged      bool
	SetDerivativesErr     error
	SetDerivativesChanged bool
	MarkFailedErr     error
	SoftDeleteErr     error

	GetCalled        bool
	Created          *model.MediaAsset
	SetStatusCalls   []StatusTransition
	SetDerivativesID uuid.UUID
	ProcessedKey     string
	ThumbnailKey     *string
	FailedID         uuid.UUID
	FailedReason     string
	SoftDeletedID    uuid.UUID
}

// StatusTransition records one SetStatus call.
type StatusTransition struct {
	ID   uuid.UUID
	From model.MediaStatus
	To   model.MediaStatus
}

func (m *MockMediaRepo) Create(ctx context.Context, asset *model.MediaAsset) error {
	m.Created = asset
	return m.CreateErr
}

func (m *MockMediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error) {
	if m.GetCalled && m.RereadRecord != nil {
		return m.RereadRecord, nil
	}
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.AssetRecord, nil
}

func (m *MockMediaRepo) SetStatus(ctx context.Context, id uuid.UUID, from, to model.MediaStatus) (bool, error) {
	m.SetStatusCalls = append(m.SetStatusCalls, StatusTransition{ID: id, From: from, To: to})
	if m.SetStatusErr != nil {
		return false, m.SetStatusErr
	}
	return m.SetStatusChanged, nil
}

func (m *MockMediaRepo) SetDerivatives(ctx context.Context, id uuid.UUID, processedKey string, thumbnailKey *string) (bool, error) {
	m.SetDerivativesID = id
	m.ProcessedKey = processedKey
	m.ThumbnailKey = thumbnailKey
	if m.SetDerivativesErr != nil {
		return false, m.SetDerivativesErr
	}
	return m.SetDerivativesChanged, nil
}

func (m *MockMediaRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	m.FailedID = id
	m.FailedReason = reason
	return m.MarkFailedErr
}

func (m *MockMediaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	m.SoftDeletedID = id
	return m.SoftDeleteErr
}
