package media

import (
	"context"
	"fmt"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

type uploadPublisherSrv struct {
	repo port.MediaAssetRepository
	pub  port.Publisher
}

// compile-time check: *uploadPublisherSrv must satisfy port.UploadPublisher
var _ port.UploadPublisher = (*uploadPublisherSrv)(nil)

// NewUploadPublisher constructs the event publisher that hands accepted
// uploads to the queue.
func NewUploadPublisher(repo port.MediaAssetRepository, pub port.Publisher) port.UploadPublisher {
	return &uploadPublisherSrv{repo: repo, pub: pub}
}

// PublishUpload publishes a durable processing message for an accepted
// upload. On publish success the asset moves to PROCESSING; on publish
// failure it moves to FAILED and the caller must resubmit; there is no
// automatic retry at this stage.
func (s *uploadPublisherSrv) PublishUpload(ctx context.Context, in port.PublishUploadInput) error {
	env := port.Envelope{
		MediaID:        in.MediaID,
		SourceLocation: in.SourceLocation,
		OwnerEntityID:  in.KitchenID,
		RequesterID:    in.RequesterID,
		CategoryType:   in.CategoryType,
		MediaType:      in.MediaType,
	}

	if err := s.pub.EnqueueProcessMedia(ctx, env); err != nil {
		if markErr := s.repo.MarkFailed(ctx, in.MediaID, fmt.Sprintf("publish failed: %v", err)); markErr != nil {
			log.Printf("failed to mark media #%s as failed: %v", in.MediaID, markErr)
		}
		return fmt.Errorf("failed to publish processing message for media #%s: %w", in.MediaID, err)
	}

	if _, err := s.repo.SetStatus(ctx, in.MediaID, model.MediaStatusUploading, model.MediaStatusProcessing); err != nil {
		return fmt.Errorf("failed updating media #%s to processing: %w", in.MediaID, err)
	}
	return nil
}
