package port

import (
	"context"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// Cache stores rendered change-request details. Set failures are swallowed by
// implementations; the cache is best-effort.
type Cache interface {
	GetChangeRequestDetails(ctx context.Context, id uuid.UUID) ([]byte, error)
	SetChangeRequestDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration)
	DeleteChangeRequestDetails(ctx context.Context, id uuid.UUID) error
}
