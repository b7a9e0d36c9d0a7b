package media

import (
	"context"
	"fmt"
	"path"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type uploadAccepterSrv struct {
	repo    port.MediaAssetRepository
	strg    port.Storage
	pub     port.UploadPublisher
	bucket  string
	genUUID func() uuid.UUID
}

// compile-time check: *uploadAccepterSrv must satisfy port.UploadAccepter
var _ port.UploadAccepter = (*uploadAccepterSrv)(nil)

func NewUploadAccepter(repo port.MediaAssetRepository, strg port.Storage, pub port.UploadPublisher, bucket string, genUUID func() uuid.UUID) port.UploadAccepter {
	return &uploadAccepterSrv{repo, strg, pub, bucket, genUUID}
}

// AcceptUpload stores the original under a caller-derived key, records the
// asset at UPLOADING and publishes the processing message. Publish failure
// does not undo the accept: the asset is left FAILED for resubmission and
// the error propagates so the caller can log it.
func (s *uploadAccepterSrv) AcceptUpload(ctx context.Context, in port.AcceptUploadInput) (uuid.UUID, error) {
	id := s.genUUID()
	originalKey := fmt.Sprintf("%s/originals/%s%s", in.KitchenID, id, path.Ext(in.FileName))

	if err := s.strg.SaveFile(ctx, s.bucket, originalKey, in.Reader, in.Size, map[string]string{
		"Content-Type": in.ContentType,
	}); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed storing original %q: %w", originalKey, err)
	}

	asset := &model.MediaAsset{
		ID:           id,
		KitchenID:    in.KitchenID,
		MediaType:    in.MediaType,
		CategoryType: in.CategoryType,
		Status:       model.MediaStatusUploading,
		OriginalKey:  originalKey,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed creating media record: %w", err)
	}

	if err := s.pub.PublishUpload(ctx, port.PublishUploadInput{
		MediaID:        id,
		SourceLocation: originalKey,
		KitchenID:      in.KitchenID,
		RequesterID:    in.RequesterID,
		CategoryType:   in.CategoryType,
		MediaType:      in.MediaType,
	}); err != nil {
		return id, err
	}

	return id, nil
}
