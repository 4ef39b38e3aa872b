package pipeline

import (
	"errors"
	"fmt"

	"framewall/internal/border"
	"framewall/internal/depth"
	"framewall/internal/pixbuf"
	"framewall/internal/preset"
)

// Request is one unit of framing work, immutable for the duration of a
// Run.
type Request struct {
	Image      *pixbuf.Buffer
	PresetID   string
	FrameWidth int // border width in px, [0, 200]
	Depth      depth.Config
	KeepClean  bool // retain an untouched copy of the input for later upscaling

	// Noise drives the wood texture. Nil selects the process RNG;
	// tests inject a scripted source.
	Noise border.NoiseSource
}

// Result carries the composed output. Clean aliases Display unless the
// request asked for a clean copy.
type Result struct {
	Display *pixbuf.Buffer
	Clean   *pixbuf.Buffer
}

// ErrInvalidParameter is returned when a request field is outside its
// allowed range.
var ErrInvalidParameter = errors.New("pipeline: invalid parameter")

const maxFrameWidth = 200

// Run validates req, renders the border, and composes the optional
// depth scene. Pure function over its inputs: no I/O, no logging, no
// shared state, safe to call from any number of goroutines as long as
// each call owns its image.
func Run(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}
	p, err := preset.Lookup(req.PresetID)
	if err != nil {
		return Result{}, err
	}

	var clean *pixbuf.Buffer
	if req.KeepClean {
		clean = req.Image.Clone()
	}

	display := border.Render(req.Image, p, req.FrameWidth, req.Noise)
	if req.Depth.Enabled {
		display = depth.Compose(display, req.Depth)
	}

	if clean == nil {
		clean = display
	}
	return Result{Display: display, Clean: clean}, nil
}

// validate fails fast on out-of-range parameters, before any pixel
// work. Depth knobs are checked only when the depth stage is on; a
// zero-valued Config stays a valid "no depth" request.
func validate(req Request) error {
	if req.Image == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidParameter)
	}
	if req.FrameWidth < 0 || req.FrameWidth > maxFrameWidth {
		return fmt.Errorf("%w: frame width %d outside [0, %d]", ErrInvalidParameter, req.FrameWidth, maxFrameWidth)
	}
	if !req.Depth.Enabled {
		return nil
	}
	d := req.Depth
	if d.Intensity < 0.1 || d.Intensity > 1.0 {
		return fmt.Errorf("%w: depth intensity %g outside [0.1, 1.0]", ErrInvalidParameter, d.Intensity)
	}
	switch d.Style {
	case depth.StyleSubtle, depth.StyleRealistic, depth.StyleDramatic:
	default:
		return fmt.Errorf("%w: depth style %q", ErrInvalidParameter, d.Style)
	}
	if d.WallColor < 200 {
		return fmt.Errorf("%w: wall color %d outside [200, 255]", ErrInvalidParameter, d.WallColor)
	}
	return nil
}
