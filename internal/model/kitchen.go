package model

import (
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type KitchenStatus string

const (
	KitchenStatusDraft     KitchenStatus = "DRAFT"
	KitchenStatusSubmitted KitchenStatus = "SUBMITTED"
	KitchenStatusApproved  KitchenStatus = "APPROVED"
	KitchenStatusSuspended KitchenStatus = "SUSPENDED"
)

// IsLive reports whether the kitchen is already visible to customers, in
// which case any further edit must go through a change request.
func (s KitchenStatus) IsLive() bool {
	return s == KitchenStatusApproved || s == KitchenStatusSuspended
}

type StagingStatus string

const (
	StagingStatusDraft    StagingStatus = "DRAFT"
	StagingStatusApproved StagingStatus = "APPROVED"
)

type AddressStatus string

const (
	AddressStatusActive   AddressStatus = "ACTIVE"
	AddressStatusInactive AddressStatus = "INACTIVE"
)

type Kitchen struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Tagline   string        `json:"tagline"`
	Bio       string        `json:"bio"`
	HasLogo   bool          `json:"has_logo"`
	Status    KitchenStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// StagingKitchen mirrors the editable profile columns of Kitchen. It is keyed
// by the kitchen it stages for, so profile sync looks it up by KitchenID.
type StagingKitchen struct {
	ID        uuid.UUID     `json:"id"`
	KitchenID uuid.UUID     `json:"kitchen_id"`
	Name      string        `json:"name"`
	Tagline   string        `json:"tagline"`
	Bio       string        `json:"bio"`
	HasLogo   bool          `json:"has_logo"`
	Status    StagingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type KitchenAddress struct {
	ID         uuid.UUID     `json:"id"`
	KitchenID  uuid.UUID     `json:"kitchen_id"`
	Line1      string        `json:"line1"`
	Line2      string        `json:"line2,omitempty"`
	City       string        `json:"city"`
	Region     string        `json:"region"`
	PostalCode string        `json:"postal_code"`
	Status     AddressStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// StagingKitchenAddress carries AddressID once synced so a re-approval
// updates the same authoritative row instead of inserting a second one.
type StagingKitchenAddress struct {
	ID         uuid.UUID     `json:"id"`
	KitchenID  uuid.UUID     `json:"kitchen_id"`
	AddressID  *uuid.UUID    `json:"address_id,omitempty"`
	Line1      string        `json:"line1"`
	Line2      string        `json:"line2,omitempty"`
	City       string        `json:"city"`
	Region     string        `json:"region"`
	PostalCode string        `json:"postal_code"`
	Status     StagingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// KitchenAvailability is keyed naturally by (kitchen, weekday, slot).
type KitchenAvailability struct {
	ID        uuid.UUID `json:"id"`
	KitchenID uuid.UUID `json:"kitchen_id"`
	Weekday   string    `json:"weekday"`
	Slot      string    `json:"slot"`
	OpensAt   string    `json:"opens_at"`
	ClosesAt  string    `json:"closes_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StagingKitchenAvailability struct {
	ID        uuid.UUID     `json:"id"`
	KitchenID uuid.UUID     `json:"kitchen_id"`
	Weekday   string        `json:"weekday"`
	Slot      string        `json:"slot"`
	OpensAt   string        `json:"opens_at"`
	ClosesAt  string        `json:"closes_at"`
	SyncedID  *uuid.UUID    `json:"synced_id,omitempty"`
	Status    StagingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
