package media

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	// ErrAssetNotFound means the envelope referenced a media row that does
	// not exist in the metadata store.
	ErrAssetNotFound = errors.New("media: asset not found")

	// ErrTransformFailed marks a permanent codec/transform failure. The same
	// input will fail the same way again, so the worker routes these straight
	// to the dead queue instead of burning retries.
	ErrTransformFailed = errors.New("media: transform failed")
)
