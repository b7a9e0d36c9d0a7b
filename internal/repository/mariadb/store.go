package mariadb

import (
	"context"
	"database/sql"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Store is the mariadb-backed unit of work. Each WithinTx call hands the
// callback a SyncStore whose repositories all run on the same transaction.
type Store struct {
	db *db.Database
}

var _ port.UnitOfWork = (*Store)(nil)

func NewStore(database *db.Database) *Store {
	return &Store{db: database}
}

func (s *Store) WithinTx(ctx context.Context, fn func(st port.SyncStore) error) error {
	return s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		return fn(newTxStore(tx))
	})
}

// txStore binds every repository to one shared transaction.
type txStore struct {
	kitchens     *KitchenRepository
	addresses    *AddressRepository
	availability *AvailabilityRepository
	mediaAssets  *MediaAssetRepository
	requests     *ChangeRequestRepository
}

var _ port.SyncStore = (*txStore)(nil)

func newTxStore(tx *sql.Tx) *txStore {
	return &txStore{
		kitchens:     NewKitchenRepository(tx),
		addresses:    NewAddressRepository(tx),
		availability: NewAvailabilityRepository(tx),
		mediaAssets:  NewMediaAssetRepository(tx),
		requests:     NewChangeRequestRepository(tx),
	}
}

func (s *txStore) Kitchens() port.KitchenRepository             { return s.kitchens }
func (s *txStore) Addresses() port.AddressRepository            { return s.addresses }
func (s *txStore) Availability() port.AvailabilityRepository    { return s.availability }
func (s *txStore) MediaAssets() port.MediaAssetRepository       { return s.mediaAssets }
func (s *txStore) ChangeRequests() port.ChangeRequestRepository { return s.requests }
