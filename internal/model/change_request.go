package model

import (
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type ChangeRequestStatus string

const (
	ChangeRequestStatusInitiated ChangeRequestStatus = "INITIATED"
	ChangeRequestStatusApproved  ChangeRequestStatus = "APPROVED"
	ChangeRequestStatusRejected  ChangeRequestStatus = "REJECTED"
)

// Entity and sub-entity names a change request can point at.
const (
	EntityKitchen             = "KITCHEN"
	SubEntityKitchenMedia     = "KITCHEN_MEDIA"
	SubEntityKitchenAddress   = "KITCHEN_ADDRESS"
	SubEntityKitchenAvailSlot = "KITCHEN_AVAILABILITY"
)

// Domain verbs. Each (entity, action) pair maps to exactly one synchronizer.
const (
	ActionKitchenCreated             = "KITCHEN_CREATED"
	ActionKitchenProfileUpdated      = "KITCHEN_PROFILE_UPDATED"
	ActionKitchenAddressUpdated      = "KITCHEN_ADDRESS_UPDATED"
	ActionKitchenAvailabilityUpdated = "KITCHEN_AVAILABILITY_UPDATED"
	ActionKitchenMediaUploaded       = "KITCHEN_MEDIA_UPLOADED"
)

type ChangeRequest struct {
	ID            uuid.UUID           `json:"id"`
	EntityName    string              `json:"entity_name"`
	EntityID      uuid.UUID           `json:"entity_id"`
	SubEntityName *string             `json:"sub_entity_name,omitempty"`
	SubEntityID   *uuid.UUID          `json:"sub_entity_id,omitempty"`
	Action        string              `json:"action"`
	Status        ChangeRequestStatus `json:"status"`
	RequestedBy   uuid.UUID           `json:"requested_by"`
	RequestedRole string              `json:"requested_role"`
	WorkflowID    string              `json:"workflow_id"`
	Reason        *string             `json:"reason,omitempty"`
	ReviewedBy    *uuid.UUID          `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
