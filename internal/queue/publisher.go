package queue

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Publisher owns the broker client for the media queue topology:
//
//   - the primary queue, consumed by worker processes;
//   - the retry leg, an explicit republish back onto the primary queue after
//     a fixed delay (the broker's scheduled set acts as the delay queue);
//   - the dead queue, a terminal sink no server consumes, kept for manual
//     inspection.
//
// Redelivery is driven entirely by these explicit republishes; broker-level
// retry is disabled on every task.
type Publisher struct {
	client     *asynq.Client
	primary    string
	dead       string
	retryDelay time.Duration
}

// compile-time check
var _ port.Publisher = (*Publisher)(nil)

func NewPublisher(addr, password, primary, dead string, retryDelay time.Duration) *Publisher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Publisher{client: c, primary: primary, dead: dead, retryDelay: retryDelay}
}

func (p *Publisher) EnqueueProcessMedia(ctx context.Context, env port.Envelope) error {
	t, err := NewProcessMediaTask(env, 0)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, t,
		asynq.Queue(p.primary),
		asynq.MaxRetry(0),
	)
	return err
}

func (p *Publisher) EnqueueRetry(ctx context.Context, env port.Envelope, retryCount int) error {
	t, err := NewProcessMediaTask(env, retryCount)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, t,
		asynq.Queue(p.primary),
		asynq.MaxRetry(0),
		asynq.ProcessIn(p.retryDelay),
	)
	return err
}

func (p *Publisher) EnqueueDead(ctx context.Context, env port.Envelope, retryCount int) error {
	t, err := NewProcessMediaTask(env, retryCount)
	if err != nil {
		return err
	}
	_, err = p.client.EnqueueContext(ctx, t,
		asynq.Queue(p.dead),
		asynq.MaxRetry(0),
	)
	return err
}

func (p *Publisher) EnqueueDeadRaw(ctx context.Context, payload []byte) error {
	t := asynq.NewTask(TypeProcessMedia, payload)
	_, err := p.client.EnqueueContext(ctx, t,
		asynq.Queue(p.dead),
		asynq.MaxRetry(0),
	)
	return err
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
