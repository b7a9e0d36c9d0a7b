package queue

import (
	"testing"

	"github.com/hibiken/asynq"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func testEnvelope() port.Envelope {
	return port.Envelope{
		MediaID:        uuid.NewUUID(),
		SourceLocation: "kitchen/originals/file.jpeg",
		OwnerEntityID:  uuid.NewUUID(),
		RequesterID:    uuid.NewUUID(),
		CategoryType:   "logo",
		MediaType:      model.MediaTypeImage,
	}
}

func TestNewProcessMediaTask_Roundtrip(t *testing.T) {
	env := testEnvelope()

	task, err := NewProcessMediaTask(env, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TypeProcessMedia {
		t.Errorf("got task type %q; want %q", task.Type(), TypeProcessMedia)
	}

	d, err := ParseDelivery(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.RetryCount() != 2 {
		t.Errorf("got retry count %d; want 2", d.RetryCount())
	}
	if d.Body != env {
		t.Errorf("body changed across the wire: got %+v; want %+v", d.Body, env)
	}
}

func TestParseDelivery_MissingHeaderDefaultsToZero(t *testing.T) {
	task := asynq.NewTask(TypeProcessMedia, []byte(`{"body":{"mediaId":"018f1fd2-4c7a-7d5e-8a3b-1f2e3d4c5b6a"}}`))

	d, err := ParseDelivery(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.RetryCount() != 0 {
		t.Errorf("got retry count %d; want 0", d.RetryCount())
	}
}

func TestParseDelivery_MalformedPayload(t *testing.T) {
	task := asynq.NewTask(TypeProcessMedia, []byte("not json"))

	if _, err := ParseDelivery(task); err == nil {
		t.Fatal("expected an error for a malformed payload")
	}
}
