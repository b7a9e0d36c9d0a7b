package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// TypeProcessMedia is the task type consumed by the media worker.
const TypeProcessMedia = "media:process"

// HeaderRetryCount carries the application-level retry counter. It lives in
// the delivery headers, not in the envelope body, so the body stays exactly
// the documented wire shape.
const HeaderRetryCount = "x-retry-count"

// Delivery wraps the envelope body with transport headers, mirroring an AMQP
// message. Asynq tasks have no native headers, so the wrapper is the payload.
type Delivery struct {
	Headers map[string]int `json:"headers"`
	Body    port.Envelope  `json:"body"`
}

// RetryCount reads the retry header; missing means a first delivery.
func (d Delivery) RetryCount() int {
	return d.Headers[HeaderRetryCount]
}

// NewProcessMediaTask builds the asynq task for one delivery.
func NewProcessMediaTask(env port.Envelope, retryCount int) (*asynq.Task, error) {
	d := Delivery{
		Headers: map[string]int{HeaderRetryCount: retryCount},
		Body:    env,
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("could not marshal process-media delivery: %w", err)
	}
	return asynq.NewTask(TypeProcessMedia, data), nil
}

// ParseDelivery parses a task payload back into a Delivery.
func ParseDelivery(t *asynq.Task) (Delivery, error) {
	var d Delivery
	if err := json.Unmarshal(t.Payload(), &d); err != nil {
		return Delivery{}, fmt.Errorf("could not unmarshal delivery: %w", err)
	}
	if d.Headers == nil {
		d.Headers = map[string]int{}
	}
	return d, nil
}
