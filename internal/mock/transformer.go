package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Transformer implements port.Transformer for tests.
type Transformer struct {
	Out []port.Derivative
	Err error

	Called    bool
	MediaType model.MediaType
	SrcPath   string
	DstDir    string
}

var _ port.Transformer = (*Transformer)(nil)

func (m *Transformer) Transform(ctx context.Context, mediaType model.MediaType, srcPath, dstDir string) ([]port.Derivative, error) {
	m.Called = true
	m.MediaType = mediaType
	m.SrcPath = srcPath
	m.DstDir = dstDir
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}
