package render

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"

	"addesigner/internal/domain"
)

// Filename is the download name of an export at the given preset.
func Filename(p domain.SizePreset) string {
	return "ad-" + p.Dimensions() + ".png"
}

// EncodePNG writes the surface as a PNG.
func EncodePNG(w io.Writer, s *Surface) error {
	return imaging.Encode(w, s.Image, imaging.PNG)
}

// PNGBytes is EncodePNG into memory.
func PNGBytes(s *Surface) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
