package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// SyncStore bundles repository mocks behind port.SyncStore.
type SyncStore struct {
	KitchenRepo      *MockKitchenRepo
	AddressRepo      *MockAddressRepo
	AvailabilityRepo *MockAvailabilityRepo
	MediaRepo        *MockMediaRepo
	RequestRepo      *MockChangeRequestRepo
}

var _ port.SyncStore = (*SyncStore)(nil)

// NewSyncStore builds a SyncStore with every repository mock ready.
func NewSyncStore() *SyncStore {
	return &SyncStore{
		KitchenRepo:      &MockKitchenRepo{},
		AddressRepo:      &MockAddressRepo{},
		AvailabilityRepo: &MockAvailabilityRepo{},
		MediaRepo:        &MockMediaRepo{},
		RequestRepo:      &MockChangeRequestRepo{},
	}
}

func (s *SyncStore) Kitchens() port.KitchenRepository             { return s.KitchenRepo }
func (s *SyncStore) Addresses() port.AddressRepository            { return s.AddressRepo }
func (s *SyncStore) Availability() port.AvailabilityRepository    { return s.AvailabilityRepo }
func (s *SyncStore) MediaAssets() port.MediaAssetRepository       { return s.MediaRepo }
func (s *SyncStore) ChangeRequests() port.ChangeRequestRepository { return s.RequestRepo }

// UnitOfWork implements port.UnitOfWork over a SyncStore. It records whether
// the callback error would have rolled the transaction back.
type UnitOfWork struct {
	Store    *SyncStore
	BeginErr error

	Calls      int
	RolledBack bool
}

var _ port.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(s port.SyncStore) error) error {
	if u.BeginErr != nil {
		return u.BeginErr
	}
	u.Calls++
	if err := fn(u.Store); err != nil {
		u.RolledBack = true
		return err
	}
	return nil
}

// Synchronizer implements port.Synchronizer for tests.
type Synchronizer struct {
	Err error

	Called bool
	Req    *model.ChangeRequest
}

var _ port.Synchronizer = (*Synchronizer)(nil)

func (m *Synchronizer) Sync(ctx context.Context, s port.SyncStore, req *model.ChangeRequest) error {
	m.Called = true
	m.Req = req
	return m.Err
}
