// Package zip bundles rendered exports into a single archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"
)

// Asset is one file of the archive.
type Asset struct {
	Filename string
	Data     []byte
}

// epoch keeps archives of identical assets byte-identical.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteAssets streams assets into w in the given order. Duplicate names are
// rejected.
func WriteAssets(w io.Writer, assets []Asset) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]struct{}, len(assets))
	for _, asset := range assets {
		if asset.Filename == "" {
			return fmt.Errorf("zip: empty filename")
		}
		if _, dup := seen[asset.Filename]; dup {
			return fmt.Errorf("zip: duplicate entry %q", asset.Filename)
		}
		seen[asset.Filename] = struct{}{}

		// PNG data is already deflated
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     asset.Filename,
			Method:   zip.Store,
			Modified: epoch,
		})
		if err != nil {
			return fmt.Errorf("zip: create %s: %w", asset.Filename, err)
		}
		if _, err := fw.Write(asset.Data); err != nil {
			return fmt.Errorf("zip: write %s: %w", asset.Filename, err)
		}
	}
	return zw.Close()
}

// ArchiveAssets returns the archive of assets as bytes.
func ArchiveAssets(assets []Asset) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteAssets(buf, assets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
