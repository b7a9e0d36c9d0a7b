package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type mediaProcessorSrv struct {
	repo     port.MediaAssetRepository
	kitchens port.KitchenRepository
	requests port.ChangeRequestRepository
	strg     port.Storage
	trans    port.Transformer
	bucket   string
}

// compile-time check: *mediaProcessorSrv must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*mediaProcessorSrv)(nil)

func NewMediaProcessor(
	repo port.MediaAssetRepository,
	kitchens port.KitchenRepository,
	requests port.ChangeRequestRepository,
	strg port.Storage,
	trans port.Transformer,
	bucket string,
) port.MediaProcessor {
	return &mediaProcessorSrv{repo, kitchens, requests, strg, trans, bucket}
}

// ProcessMedia runs the per-message pipeline: resolve the asset and its
// kitchen, download the original to a per-message scratch dir, transform,
// upload derivatives to their deterministic keys, advance the asset in two
// observable steps (UPLOADED then PROCESSED), and raise a change request when
// the kitchen is already live. Derivative keys overwrite on redelivery, and a
// row already at PROCESSED or later is skipped, so the whole call is
// idempotent under at-least-once delivery.
func (s *mediaProcessorSrv) ProcessMedia(ctx context.Context, env port.Envelope) error {
	asset, err := s.repo.GetByID(ctx, env.MediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: #%s", ErrAssetNotFound, env.MediaID)
		}
		return err
	}

	if model.MediaStatusRank(asset.Status) >= model.MediaStatusRank(model.MediaStatusProcessed) {
		log.Printf("media #%s already at status %q, skipping", asset.ID, asset.Status)
		return nil
	}

	kitchen, err := s.kitchens.GetByID(ctx, asset.KitchenID)
	if err != nil {
		return fmt.Errorf("failed resolving kitchen #%s: %w", asset.KitchenID, err)
	}

	// Scratch space is keyed per message, never per media id alone, so a
	// redelivery racing a retry cannot collide on disk.
	scratchDir, err := os.MkdirTemp("", "media-"+env.MediaID.String()+"-")
	if err != nil {
		return fmt.Errorf("failed creating scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.Printf("failed to clean up scratch dir %q: %v", scratchDir, err)
		}
	}()

	originalPath := filepath.Join(scratchDir, "original")
	if err := s.download(ctx, env.SourceLocation, originalPath); err != nil {
		return err
	}

	derivatives, err := s.trans.Transform(ctx, env.MediaType, originalPath, scratchDir)
	if err != nil {
		return err
	}

	var processedKey string
	var thumbnailKey *string
	for _, d := range derivatives {
		key := s.derivativeKey(env, d)
		if err := s.upload(ctx, d, key); err != nil {
			return err
		}
		switch d.Role {
		case port.DerivativeRoleThumbnail:
			k := key
			thumbnailKey = &k
		default:
			processedKey = key
		}
	}

	// Two observable steps: derivative keys + UPLOADED first, PROCESSED
	// second, so a crash in between is diagnosable from the row itself.
	changed, err := s.repo.SetDerivatives(ctx, asset.ID, processedKey, thumbnailKey)
	if err != nil {
		return fmt.Errorf("failed persisting derivative keys for media #%s: %w", asset.ID, err)
	}
	if !changed {
		// either the row advanced past UPLOADED while this transform ran, or
		// this is a redelivery rewriting identical keys onto an UPLOADED row
		// after a crash between the two steps; only the former is a skip
		cur, err := s.repo.GetByID(ctx, asset.ID)
		if err != nil {
			return fmt.Errorf("failed re-reading media #%s after derivative write: %w", asset.ID, err)
		}
		if cur.Status != model.MediaStatusUploaded {
			log.Printf("media #%s advanced to %q while processing, leaving it untouched", asset.ID, cur.Status)
			return nil
		}
	}
	if _, err := s.repo.SetStatus(ctx, asset.ID, model.MediaStatusUploaded, model.MediaStatusProcessed); err != nil {
		return fmt.Errorf("failed updating media #%s to processed: %w", asset.ID, err)
	}

	if kitchen.Status.IsLive() {
		if err := s.raiseChangeRequest(ctx, env); err != nil {
			return err
		}
	}

	return nil
}

func (s *mediaProcessorSrv) download(ctx context.Context, fileKey, destPath string) error {
	reader, err := s.strg.GetFile(ctx, s.bucket, fileKey)
	if err != nil {
		return fmt.Errorf("failed downloading original %q: %w", fileKey, err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed creating scratch file %q: %w", destPath, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("failed writing scratch file %q: %w", destPath, err)
	}
	return nil
}

func (s *mediaProcessorSrv) upload(ctx context.Context, d port.Derivative, key string) error {
	file, err := os.Open(d.Path)
	if err != nil {
		return fmt.Errorf("failed opening derivative %q: %w", d.Path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat derivative %q: %w", d.Path, err)
	}

	if err := s.strg.SaveFile(ctx, s.bucket, key, file, info.Size(), map[string]string{
		"Content-Type": d.ContentType,
	}); err != nil {
		return fmt.Errorf("failed uploading derivative %q: %w", key, err)
	}
	return nil
}

// derivativeKey builds the deterministic object key for one derivative.
// Images carry their category role in the key because one kitchen can hold
// several image roles (logo, banner, ...) per media id scheme.
func (s *mediaProcessorSrv) derivativeKey(env port.Envelope, d port.Derivative) string {
	if d.Role == port.DerivativeRoleThumbnail {
		return fmt.Sprintf("%s_processed_thumbnail.%s", env.MediaID, d.Ext)
	}
	if env.MediaType == model.MediaTypeImage {
		category := env.CategoryType
		if category == "" {
			category = "standard"
		}
		return fmt.Sprintf("%s_processed_%s.%s", env.MediaID, category, d.Ext)
	}
	return fmt.Sprintf("%s_processed.%s", env.MediaID, d.Ext)
}

// raiseChangeRequest inserts exactly one INITIATED request for this media
// upload. An open request for the same (media, action) pair is reused, which
// keeps redeliveries from creating duplicates.
func (s *mediaProcessorSrv) raiseChangeRequest(ctx context.Context, env port.Envelope) error {
	mediaID := env.MediaID
	existing, err := s.requests.FindOpen(ctx, model.EntityKitchen, env.OwnerEntityID, &mediaID, model.ActionKitchenMediaUploaded)
	if err != nil {
		return fmt.Errorf("failed checking for open change request: %w", err)
	}
	if existing != nil {
		log.Printf("open change request #%s already covers media #%s", existing.ID, mediaID)
		return nil
	}

	subEntity := model.SubEntityKitchenMedia
	req := &model.ChangeRequest{
		ID:            uuid.NewUUID(),
		EntityName:    model.EntityKitchen,
		EntityID:      env.OwnerEntityID,
		SubEntityName: &subEntity,
		SubEntityID:   &mediaID,
		Action:        model.ActionKitchenMediaUploaded,
		Status:        model.ChangeRequestStatusInitiated,
		RequestedBy:   env.RequesterID,
		RequestedRole: "KITCHEN_OWNER",
		WorkflowID:    fmt.Sprintf("media-upload-%s", mediaID),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return fmt.Errorf("failed creating change request for media #%s: %w", mediaID, err)
	}
	log.Printf("created change request #%s for media #%s", req.ID, mediaID)
	return nil
}
