package mock

import (
	"context"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// Cache implements port.Cache for tests.
type Cache struct {
	GetOut []byte
	GetErr error
	DelErr error

	GetCalled bool
	SetCalled bool
	SetID     uuid.UUID
	SetData   []byte
	SetTTL    time.Duration
	DelCalled bool
	DelID     uuid.UUID
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetChangeRequestDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetOut, nil
}

func (m *Cache) SetChangeRequestDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	m.SetCalled = true
	m.SetID = id
	m.SetData = data
	m.SetTTL = ttl
}

func (m *Cache) DeleteChangeRequestDetails(ctx context.Context, id uuid.UUID) error {
	m.DelCalled = true
	m.DelID = id
	return m.DelErr
}
