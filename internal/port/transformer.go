package port

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
)

// Derivative roles produced by a transform.
const (
	DerivativeRoleProcessed = "processed"
	DerivativeRoleThumbnail = "thumbnail"
)

// Derivative is one output file of a transform, still on local disk.
type Derivative struct {
	Path        string
	Role        string
	ContentType string
	Ext         string
}

// Transformer turns a downloaded original into its derivative file(s) inside
// dstDir. It never writes outside dstDir; the caller owns cleanup.
type Transformer interface {
	Transform(ctx context.Context, mediaType model.MediaType, srcPath, dstDir string) ([]Derivative, error)
}
