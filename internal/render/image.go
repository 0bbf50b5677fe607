package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"addesigner/internal/domain"
)

const (
	// MaxImagePixels bounds the decoded size of an imported image.
	MaxImagePixels = 40_000_000
	// maxImageEdge is the longest edge kept after import; larger images are
	// scaled down once so re-renders never resize a full-resolution photo.
	maxImageEdge = 3840
)

// DecodeImage decodes any registered raster format (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and applies EXIF orientation. The header is checked first and
// images above MaxImagePixels are rejected before any pixel buffer is
// allocated.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageDecode, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrImageDecode)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", domain.ErrImageDecode, cfg.Width, cfg.Height, MaxImagePixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrImageDecode)
	}
	if b.Dx() > maxImageEdge || b.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}
	return img, nil
}

// FitContain scales an iw×ih image uniformly so it fits inside a w×h area
// and centers it. The result touches both edges of at least one axis.
func FitContain(iw, ih, w, h int) image.Rectangle {
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(float64(w)/float64(iw), float64(h)/float64(ih))
	dw := min(w, max(1, int(math.Round(float64(iw)*scale))))
	dh := min(h, max(1, int(math.Round(float64(ih)*scale))))
	x := (w - dw) / 2
	y := (h - dh) / 2
	return image.Rect(x, y, x+dw, y+dh)
}
