package transform

import (
	"context"
	"fmt"
	"log"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
)

// Config bounds every transform.
type Config struct {
	FFmpegBin     string
	MaxImageWidth int
	JPEGQuality   int
	VideoBitrate  string
	AudioBitrate  string
}

// Transformer produces derivatives for the three supported media types:
// images are resized to a bounded width and re-encoded as JPEG, videos get a
// bitrate-bounded transcode plus one extracted keyframe thumbnail, audios get
// a bitrate-bounded transcode.
type Transformer struct {
	cfg Config
}

// compile-time check: *Transformer must satisfy port.Transformer
var _ port.Transformer = (*Transformer)(nil)

func NewTransformer(cfg Config) *Transformer {
	log.Println("initialising transformer...")
	if cfg.FFmpegBin == "" {
		cfg.FFmpegBin = "ffmpeg"
	}
	if cfg.MaxImageWidth <= 0 {
		cfg.MaxImageWidth = 800
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 80
	}
	return &Transformer{cfg: cfg}
}

func (t *Transformer) Transform(ctx context.Context, mediaType model.MediaType, srcPath, dstDir string) ([]port.Derivative, error) {
	switch mediaType {
	case model.MediaTypeImage:
		return t.transformImage(srcPath, dstDir)
	case model.MediaTypeVideo:
		return t.transformVideo(ctx, srcPath, dstDir)
	case model.MediaTypeAudio:
		return t.transformAudio(ctx, srcPath, dstDir)
	default:
		return nil, fmt.Errorf("%w: unsupported media type %q", media.ErrTransformFailed, mediaType)
	}
}
