package model

import (
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
)

type MediaStatus string

const (
	MediaStatusUploading  MediaStatus = "UPLOADING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusUploaded   MediaStatus = "UPLOADED"
	MediaStatusProcessed  MediaStatus = "PROCESSED"
	MediaStatusApproved   MediaStatus = "APPROVED"
	MediaStatusFailed     MediaStatus = "FAILED"
	MediaStatusDeleted    MediaStatus = "DELETED"
)

// mediaStatusRank orders the forward statuses. FAILED and DELETED sit outside
// the ladder: a row may drop to FAILED from anywhere but never climbs back.
var mediaStatusRank = map[MediaStatus]int{
	MediaStatusUploading:  1,
	MediaStatusProcessing: 2,
	MediaStatusUploaded:   3,
	MediaStatusProcessed:  4,
	MediaStatusApproved:   5,
}

// MediaStatusRank returns the position of a status on the forward ladder,
// or 0 for terminal side states (FAILED, DELETED).
func MediaStatusRank(s MediaStatus) int {
	return mediaStatusRank[s]
}

type MediaAsset struct {
	ID             uuid.UUID   `json:"id"`
	KitchenID      uuid.UUID   `json:"kitchen_id"`
	MediaType      MediaType   `json:"media_type"`
	CategoryType   string      `json:"category_type,omitempty"`
	Status         MediaStatus `json:"status"`
	OriginalKey    string      `json:"original_key"`
	ProcessedKey   *string     `json:"processed_key,omitempty"`
	ThumbnailKey   *string     `json:"thumbnail_key,omitempty"`
	FailureMessage *string     `json:"failure_message,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty"`
}
