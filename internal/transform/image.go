package transform

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
)

// transformImage decodes the original (JPEG, PNG or WebP), scales it down to
// the bounded width when needed, and re-encodes it as JPEG at fixed quality.
func (t *Transformer) transformImage(srcPath, dstDir string) ([]port.Derivative, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open original %q: %w", srcPath, err)
	}
	defer func() { _ = src.Close() }()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", media.ErrTransformFailed, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > t.cfg.MaxImageWidth {
		width := t.cfg.MaxImageWidth
		height := bounds.Dy() * width / bounds.Dx()
		// integer division truncates extreme aspect ratios to an empty image
		if height < 1 {
			height = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	outPath := filepath.Join(dstDir, "processed.jpeg")
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create derivative %q: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: t.cfg.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("%w: encode jpeg: %v", media.ErrTransformFailed, err)
	}

	return []port.Derivative{{
		Path:        outPath,
		Role:        port.DerivativeRoleProcessed,
		ContentType: "image/jpeg",
		Ext:         "jpeg",
	}}, nil
}
