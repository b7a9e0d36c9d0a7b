package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Publisher implements port.Publisher for tests.
type Publisher struct {
	ProcessErr error
	RetryErr   error
	DeadErr    error
	DeadRawErr error
	CloseErr   error

	Published     []port.Envelope
	Retried       []port.Envelope
	RetriedCounts []int
	Deaded        []port.Envelope
	DeadedCounts  []int
	DeadRaw       [][]byte
	CloseCalled   bool
}

var _ port.Publisher = (*Publisher)(nil)

func (m *Publisher) EnqueueProcessMedia(ctx context.Context, env port.Envelope) error {
	m.Published = append(m.Published, env)
	return m.ProcessErr
}

func (m *Publisher) EnqueueRetry(ctx context.Context, env port.Envelope, retryCount int) error {
	m.Retried = append(m.Retried, env)
	m.RetriedCounts = append(m.RetriedCounts, retryCount)
	return m.RetryErr
}

func (m *Publisher) EnqueueDead(ctx context.Context, env port.Envelope, retryCount int) error {
	m.Deaded = append(m.Deaded, env)
	m.DeadedCounts = append(m.DeadedCounts, retryCount)
	return m.DeadErr
}

func (m *Publisher) EnqueueDeadRaw(ctx context.Context, payload []byte) error {
	m.DeadRaw = append(m.DeadRaw, payload)
	return m.DeadRawErr
}

func (m *Publisher) Close() error {
	m.CloseCalled = true
	return m.CloseErr
}
