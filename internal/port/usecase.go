package port

import (
	"context"
	"io"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// AcceptUploadInput carries an incoming binary upload.
type AcceptUploadInput struct {
	KitchenID    uuid.UUID
	RequesterID  uuid.UUID
	CategoryType string
	MediaType    model.MediaType
	FileName     string
	ContentType  string
	Size         int64
	Reader       io.Reader
}

// UploadAccepter stores the original object, records the asset as UPLOADING
// and hands it to the event publisher. It returns the new media id; the HTTP
// layer answers 202 with it regardless of how the transform later goes.
type UploadAccepter interface {
	AcceptUpload(ctx context.Context, in AcceptUploadInput) (uuid.UUID, error)
}

// PublishUploadInput identifies an accepted upload to hand to the queue.
type PublishUploadInput struct {
	MediaID        uuid.UUID
	SourceLocation string
	KitchenID      uuid.UUID
	RequesterID    uuid.UUID
	CategoryType   string
	MediaType      model.MediaType
}

// UploadPublisher turns an accepted upload into a durable queue message and
// advances the media asset's status accordingly.
type UploadPublisher interface {
	PublishUpload(ctx context.Context, in PublishUploadInput) error
}

// MediaProcessor is the worker-side core: download, transform, upload
// derivatives, advance metadata, optionally raise a change request.
type MediaProcessor interface {
	ProcessMedia(ctx context.Context, env Envelope) error
}

// MediaDeleter retires a media asset: derivatives leave storage, the row
// stays behind as DELETED.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// MediaGetter reads one media asset, for status polling by the uploader.
type MediaGetter interface {
	GetMedia(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error)
}

// ApprovalEngine finalises change requests. Approve dispatches to the
// registered synchronizer inside one transaction; Reject only records the
// terminal decision.
type ApprovalEngine interface {
	Approve(ctx context.Context, changeRequestID, reviewerID uuid.UUID) error
	Reject(ctx context.Context, changeRequestID, reviewerID uuid.UUID, reason string) error
}

// ChangeRequestReader is the read/list surface over change requests.
type ChangeRequestReader interface {
	GetChangeRequest(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error)
	ListChangeRequests(ctx context.Context, filter ChangeRequestFilter) ([]*model.ChangeRequest, error)
}
