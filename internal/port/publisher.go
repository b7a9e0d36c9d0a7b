package port

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// Envelope is the queue message body for a media processing job. The retry
// count is not part of the body; it travels as a header on the delivery.
type Envelope struct {
	MediaID        uuid.UUID       `json:"mediaId" validate:"required"`
	SourceLocation string          `json:"sourceLocation" validate:"required"`
	OwnerEntityID  uuid.UUID       `json:"ownerEntityId" validate:"required"`
	RequesterID    uuid.UUID       `json:"requesterId" validate:"required"`
	CategoryType   string          `json:"categoryType,omitempty"`
	MediaType      model.MediaType `json:"mediaType" validate:"required,oneof=image video audio"`
}

// Publisher puts media processing messages on the queue topology. The handle
// is built once at startup and closed on shutdown; it owns the broker client.
type Publisher interface {
	// EnqueueProcessMedia publishes a fresh job to the primary queue with
	// persisted delivery.
	EnqueueProcessMedia(ctx context.Context, env Envelope) error
	// EnqueueRetry republishes a failed job so it lands back on the primary
	// queue after the retry delay, with the bumped retry count header.
	EnqueueRetry(ctx context.Context, env Envelope, retryCount int) error
	// EnqueueDead routes a job to the dead queue, a terminal sink kept for
	// manual inspection.
	EnqueueDead(ctx context.Context, env Envelope, retryCount int) error
	// EnqueueDeadRaw routes an undecodable payload to the dead queue
	// byte-for-byte, so messages that never yield an Envelope are still
	// preserved for inspection.
	EnqueueDeadRaw(ctx context.Context, payload []byte) error
	Close() error
}
