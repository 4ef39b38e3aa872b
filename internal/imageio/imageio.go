// Package imageio moves pixel buffers in and out of image files. Decoding
// accepts PNG, JPEG, GIF, TGA and WebP; encoding writes PNG, WebP or JPEG.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"

	"github.com/HugoSmits86/nativewebp"

	"framewall/internal/pixbuf"
)

// ErrUnsupportedFormat reports an output format Encode cannot produce.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Load reads and decodes an image file.
func Load(path string) (*pixbuf.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return pixbuf.FromImage(img), nil
}

// Encode writes img to w in the given format. Quality applies to JPEG only
// and falls back to 80 when out of range. PNG and WebP are lossless.
func Encode(w io.Writer, img *pixbuf.Buffer, format string, quality int) error {
	switch Normalize(format) {
	case "png":
		encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
		if err := encoder.Encode(w, img.ToNRGBA()); err != nil {
			return fmt.Errorf("imageio: encode png: %w", err)
		}
	case "webp":
		if err := nativewebp.Encode(w, img.ToNRGBA(), nil); err != nil {
			return fmt.Errorf("imageio: encode webp: %w", err)
		}
	case "jpeg":
		if quality <= 0 || quality > 100 {
			quality = 80
		}
		if err := jpeg.Encode(w, img.ToNRGBA(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("imageio: encode jpeg: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q (supported: png, webp, jpeg)", ErrUnsupportedFormat, format)
	}
	return nil
}

// Save encodes img into a freshly created file at path.
func Save(path string, img *pixbuf.Buffer, format string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, img, format, quality); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Normalize canonicalizes a format name. "jpg" maps to "jpeg"; unknown
// names pass through for Encode to reject.
func Normalize(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "jpg" {
		return "jpeg"
	}
	return format
}

// Extension returns the file extension for an output format.
func Extension(format string) string {
	if Normalize(format) == "jpeg" {
		return "jpg"
	}
	return Normalize(format)
}

// Decodable reports whether the file name carries an extension Load can
// decode.
func Decodable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tga", ".webp":
		return true
	}
	return false
}
