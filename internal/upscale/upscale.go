// Package upscale enlarges clean (unframed) images by an integer factor
// using Lanczos resampling.
package upscale

import (
	"errors"
	"fmt"

	"github.com/disintegration/imaging"

	"framewall/internal/imageio"
	"framewall/internal/pixbuf"
)

const (
	MinFactor     = 1
	MaxFactor     = 4
	DefaultFactor = 2
)

// ErrInvalidFactor reports an upscale factor outside [MinFactor, MaxFactor].
var ErrInvalidFactor = errors.New("upscale: factor out of range")

// Resize scales img by factor. Factor 1 returns img unchanged.
func Resize(img *pixbuf.Buffer, factor int) (*pixbuf.Buffer, error) {
	if factor < MinFactor || factor > MaxFactor {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidFactor, factor, MinFactor, MaxFactor)
	}
	if factor == 1 {
		return img, nil
	}

	dst := imaging.Resize(img.ToNRGBA(), img.Width*factor, img.Height*factor, imaging.Lanczos)
	return pixbuf.FromImage(dst), nil
}

// File upscales the image at inPath and writes the result to outPath as PNG.
func File(inPath, outPath string, factor int) error {
	img, err := imageio.Load(inPath)
	if err != nil {
		return err
	}
	up, err := Resize(img, factor)
	if err != nil {
		return err
	}
	return imageio.Save(outPath, up, "png", 0)
}
