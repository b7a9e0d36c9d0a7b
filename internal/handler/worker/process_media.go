package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/queue"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/validation"
)

// ProcessMediaHandler consumes one media processing delivery. Every outcome
// acks the delivery; failed jobs move through the retry or dead queue instead
// of redelivering in place, so no message is ever silently lost. Returning an
// error here would make asynq requeue the task, so the handler only does that
// when even the dead queue is unreachable and the message would otherwise
// vanish.
func ProcessMediaHandler(svc port.MediaProcessor, pub port.Publisher, repo port.MediaAssetRepository, retryCeiling int) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		d, err := queue.ParseDelivery(t)
		if err != nil {
			log.Printf("❌  Dead-lettering malformed delivery: %v", err)
			if deadErr := pub.EnqueueDeadRaw(ctx, t.Payload()); deadErr != nil {
				log.Printf("❌  Could not dead-letter malformed delivery: %v", deadErr)
				return deadErr
			}
			return nil
		}
		env := d.Body
		if err := validation.ValidateStruct(env); err != nil {
			log.Printf("❌  Dead-lettering invalid envelope: %v", err)
			return deadLetter(ctx, pub, repo, env, d.RetryCount(), fmt.Sprintf("invalid envelope: %v", err))
		}

		procErr := svc.ProcessMedia(ctx, env)
		if procErr == nil {
			log.Printf("✅  Successfully processed media #%s", env.MediaID)
			return nil
		}

		retryCount := d.RetryCount()
		log.Printf("❌  Failed to process media #%s (attempt %d): %v", env.MediaID, retryCount+1, procErr)

		// permanent failures skip the retry loop; the same bytes would fail
		// the same way every time
		if errors.Is(procErr, media.ErrTransformFailed) || retryCount >= retryCeiling {
			return deadLetter(ctx, pub, repo, env, retryCount, fmt.Sprintf("processing failed after %d attempts: %v", retryCount+1, procErr))
		}

		if err := pub.EnqueueRetry(ctx, env, retryCount+1); err != nil {
			log.Printf("❌  Could not schedule retry for media #%s: %v", env.MediaID, err)
			return err
		}
		log.Printf("🔁  Scheduled retry %d for media #%s", retryCount+1, env.MediaID)
		return nil
	}
}

// deadLetter parks the envelope on the dead queue and flips the asset to
// FAILED so a job leaving the retry loop never strands its row at PROCESSING.
// The status write is best effort; the dead-lettered message itself carries
// enough to replay the job.
func deadLetter(ctx context.Context, pub port.Publisher, repo port.MediaAssetRepository, env port.Envelope, retryCount int, reason string) error {
	if err := pub.EnqueueDead(ctx, env, retryCount); err != nil {
		log.Printf("❌  Could not dead-letter media #%s: %v", env.MediaID, err)
		return err
	}
	if env.MediaID != (uuid.UUID{}) {
		if err := repo.MarkFailed(ctx, env.MediaID, reason); err != nil {
			log.Printf("❌  Could not mark media #%s as failed: %v", env.MediaID, err)
		}
	}
	log.Printf("⚰️  Dead-lettered media #%s after %d attempts", env.MediaID, retryCount+1)
	return nil
}
