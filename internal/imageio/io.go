// Package imageio loads target images and writes canvas snapshots.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/rectfit"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an output extension is not
	// supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrInvalidSize is returned for non-positive resize dimensions.
	ErrInvalidSize = errors.New("imageio: invalid size")
)

// Load loads an image from path, auto-detecting the format from its
// content. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func Load(path string) (*rectfit.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*rectfit.Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return rectfit.FromImage(img), nil
}

// Save writes p to path. The format follows the extension: ".png",
// ".jpg" or ".jpeg".
func Save(p *rectfit.Pixmap, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, p, ext); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes p to w in the format named by ext.
func Encode(w io.Writer, p *rectfit.Pixmap, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		if err := png.Encode(w, p.ToImage()); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(w, p.ToImage(), &jpeg.Options{Quality: 95}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}
