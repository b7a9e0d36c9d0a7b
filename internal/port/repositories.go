package port

import (
	"context"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// MediaAssetRepository defines persistence operations for media assets.
type MediaAssetRepository interface {
	Create(ctx context.Context, asset *model.MediaAsset) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error)
	// SetStatus moves the asset to status and reports whether a row changed.
	// The update is conditioned on the current status so a racing consumer
	// never regresses a row that already moved further along.
	SetStatus(ctx context.Context, id uuid.UUID, from, to model.MediaStatus) (bool, error)
	// SetDerivatives persists the derivative keys and flips the row to
	// UPLOADED in the same statement. The update is conditioned on the row
	// still being at PROCESSING or UPLOADED so a slow consumer holding a
	// redelivered message never drags a row that already moved further along
	// back to UPLOADED; it reports whether a row changed.
	SetDerivatives(ctx context.Context, id uuid.UUID, processedKey string, thumbnailKey *string) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ChangeRequestFilter narrows List results. Zero values mean "any".
type ChangeRequestFilter struct {
	EntityName string
	EntityID   *uuid.UUID
	Status     model.ChangeRequestStatus
	Limit      int
	Offset     int
}

// ChangeRequestRepository defines persistence operations for change requests.
type ChangeRequestRepository interface {
	Create(ctx context.Context, req *model.ChangeRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error)
	List(ctx context.Context, filter ChangeRequestFilter) ([]*model.ChangeRequest, error)
	// FindOpen returns the INITIATED request matching the identity tuple,
	// or nil when none exists.
	FindOpen(ctx context.Context, entityName string, entityID uuid.UUID, subEntityID *uuid.UUID, action string) (*model.ChangeRequest, error)
	// Finalise applies the terminal transition. The update is conditioned on
	// the row still being INITIATED; zero rows affected is the authoritative
	// conflict signal and is reported through the returned bool.
	Finalise(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, reviewedBy uuid.UUID, reviewedAt time.Time, reason *string) (bool, error)
}

// KitchenRepository covers the kitchen profile pair (authoritative + staging).
type KitchenRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Kitchen, error)
	UpdateProfile(ctx context.Context, kitchen *model.Kitchen) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.KitchenStatus) error
	GetStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) (*model.StagingKitchen, error)
	MarkStagingApproved(ctx context.Context, stagingID uuid.UUID) error
}

// AddressRepository covers the kitchen address pair.
type AddressRepository interface {
	GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAddress, error)
	ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAddress, error)
	// DeactivateAll flips every ACTIVE address of the kitchen to INACTIVE.
	DeactivateAll(ctx context.Context, kitchenID uuid.UUID) error
	// UpsertActive writes the staged data into the authoritative table as the
	// ACTIVE address, reusing staging.AddressID when it is already synced.
	// It returns the authoritative row id.
	UpsertActive(ctx context.Context, staging *model.StagingKitchenAddress) (uuid.UUID, error)
	// MarkStagingApproved stamps the staging row APPROVED and backfills the
	// authoritative id it now mirrors.
	MarkStagingApproved(ctx context.Context, stagingID, addressID uuid.UUID) error
}

// AvailabilityRepository covers the kitchen availability pair.
type AvailabilityRepository interface {
	ListStagingByKitchenID(ctx context.Context, kitchenID uuid.UUID) ([]*model.StagingKitchenAvailability, error)
	GetStagingByID(ctx context.Context, stagingID uuid.UUID) (*model.StagingKitchenAvailability, error)
	// UpsertSlot writes the staged slot into the authoritative table by its
	// (kitchen, weekday, slot) natural key and returns the authoritative id.
	UpsertSlot(ctx context.Context, staging *model.StagingKitchenAvailability) (uuid.UUID, error)
	// MarkStagingApproved stamps the staging row APPROVED and backfills its
	// pointer to the authoritative row, making re-sync idempotent.
	MarkStagingApproved(ctx context.Context, stagingID, syncedID uuid.UUID) error
}
