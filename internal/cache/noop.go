package cache

import (
	"context"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetChangeRequestDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetChangeRequestDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) DeleteChangeRequestDetails(ctx context.Context, id uuid.UUID) error { return nil }
