package port

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
)

// SyncStore is the transaction-scoped view of the metadata store handed to
// synchronizers. Every repository it returns runs on the same transaction, so
// a failed synchronizer rolls back all of its writes together with the
// change-request finalisation.
type SyncStore interface {
	Kitchens() KitchenRepository
	Addresses() AddressRepository
	Availability() AvailabilityRepository
	MediaAssets() MediaAssetRepository
	ChangeRequests() ChangeRequestRepository
}

// UnitOfWork runs fn inside one database transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(s SyncStore) error) error
}

// Synchronizer copies one staging entity's data into its authoritative
// counterpart. Implementations must be safe to re-run for the same request.
type Synchronizer interface {
	Sync(ctx context.Context, s SyncStore, req *model.ChangeRequest) error
}
