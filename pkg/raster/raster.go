// Package raster writes images to disk, picking the encoding from the
// destination's file extension.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// JPEGQuality is high enough that a two-tone image survives compression
// without visible ringing.
const JPEGQuality = 100

var ErrUnsupportedFormat = errors.New("unsupported image format")

// An Encoder writes img to w.
type Encoder func(w io.Writer, img image.Image) error

// EncoderFor returns the Encoder matching the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		}, nil
	case ".png":
		return png.Encode, nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Write encodes img and saves it to path, replacing any existing file.
// A failed encode may leave a partial file behind.
func Write(path string, img image.Image) error {
	encode, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	err = encode(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
