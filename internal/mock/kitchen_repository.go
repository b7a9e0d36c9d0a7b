package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// MockKitchenRepo implements port.KitchenRepository for tests.
type MockKitchenRepo struct {
	KitchenRecord *model.Kitchen
	StagingRecord *model.StagingKitchen

	GetErr                 error
	UpdateProfileErr       error
	SetStatusErr           error
	GetStagingErr          error
	MarkStagingApprovedErr error

	GetCalled         bool
	UpdatedProfile    *model.Kitchen
	StatusID          uuid.UUID
	StatusSet         model.KitchenStatus
	StagingApprovedID uuid.UUID
}

func (m *MockKitchenRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Kitchen, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.KitchenRecord, nil
}

func (m *MockKitchenRepo) UpdateProfile(ctx context.Context, kitchen *model.Kitchen) error {
	m.UpdatedProfile = kitchen
	return m.UpdateProfileErr
}

func (m *MockKitchenRepo) SetStatus(ctx context.Context, id uuid.UUID, status model.KitchenStatus) error {
	m.StatusID = id
	m.StatusSet = status
	return m.SetStatusErr
}

func (m *MockKitchenRepo) GetStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) (*model.StagingKitchen, error) {
	if m.GetStagingErr != nil {
		return nil, m.GetStagingErr
	}
	return m.StagingRecord, nil
}

func (m *MockKitchenRepo) MarkStagingApproved(ctx context.Context, stagingID uuid.UUID) error {
	m.StagingApprovedID = stagingID
	return m.MarkStagingApprovedErr
}

// MockAddressRepo implements port.AddressRepository for tests.
type MockAddressRepo struct {
	StagingRecord *model.StagingKitchenAddress
	StagingList   []*model.StagingKitchenAddress
	UpsertOut     uuid.UUID

	GetStagingErr          error
	ListStagingErr         error
	DeactivateAllErr       error
	UpsertErr              error
	MarkStagingApprovedErr error

	DeactivatedKitchenID uuid.UUID
	DeactivateCalled     bool
	DeactivateCount      int
	Upserted             []*model.StagingKitchenAddress
	ApprovedStagingIDs   []uuid.UUID
	ApprovedAddressIDs   []uuid.UUID
}

func (m *MockAddressRepo) GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAddress, error) {
	if m.GetStagingErr != nil {
		return nil, m.GetStagingErr
	}
	return m.StagingRecord, nil
}

func (m *MockAddressRepo) ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAddress, error) {
	if m.ListStagingErr != nil {
		return nil, m.ListStagingErr
	}
	return m.StagingList, nil
}

func (m *MockAddressRepo) DeactivateAll(ctx context.Context, kitchenID uuid.UUID) error {
	m.DeactivateCalled = true
	m.DeactivateCount++
	m.DeactivatedKitchenID = kitchenID
	return m.DeactivateAllErr
}

func (m *MockAddressRepo) UpsertActive(ctx context.Context, staging *model.StagingKitchenAddress) (uuid.UUID, error) {
	m.Upserted = append(m.Upserted, staging)
	if m.UpsertErr != nil {
		return uuid.UUID{}, m.UpsertErr
	}
	if m.UpsertOut != (uuid.UUID{}) {
		return m.UpsertOut, nil
	}
	return uuid.NewUUID(), nil
}

func (m *MockAddressRepo) MarkStagingApproved(ctx context.Context, stagingID, addressID uuid.UUID) error {
	m.ApprovedStagingIDs = append(m.ApprovedStagingIDs, stagingID)
	m.ApprovedAddressIDs = append(m.ApprovedAddressIDs, addressID)
	return m.MarkStagingApprovedErr
}

// MockAvailabilityRepo implements port.AvailabilityRepository for tests.
type MockAvailabilityRepo struct {
	StagingRecord *model.StagingKitchenAvailability
	StagingList   []*model.StagingKitchenAvailability
	UpsertOut     uuid.UUID

	GetStagingErr          error
	ListStagingErr         error
	UpsertErr              error
	MarkStagingApprovedErr error

	Upserted           []*model.StagingKitchenAvailability
	ApprovedStagingIDs []uuid.UUID
	ApprovedSyncedIDs  []uuid.UUID
}

func (m *MockAvailabilityRepo) ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAvailability, error) {
	if m.ListStagingErr != nil {
		return nil, m.ListStagingErr
	}
	return m.StagingList, nil
}

func (m *MockAvailabilityRepo) GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAvailability, error) {
	if m.GetStagingErr != nil {
		return nil, m.GetStagingErr
	}
	return m.StagingRecord, nil
}

func (m *MockAvailabilityRepo) UpsertSlot(ctx context.Context, staging *model.StagingKitchenAvailability) (uuid.UUID, error) {
	m.Upserted = append(m.Upserted, staging)
	if m.UpsertErr != nil {
		return uuid.UUID{}, m.UpsertErr
	}
	if m.UpsertOut != (uuid.UUID{}) {
		return m.UpsertOut, nil
	}
	return uuid.NewUUID(), nil
}

func (m *MockAvailabilityRepo) MarkStagingApproved(ctx context.Context, stagingID, syncedID uuid.UUID) error {
	m.ApprovedStagingIDs = append(m.ApprovedStagingIDs, stagingID)
	m.ApprovedSyncedIDs = append(m.ApprovedSyncedIDs, syncedID)
	return m.MarkStagingApprovedErr
}
