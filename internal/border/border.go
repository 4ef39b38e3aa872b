package border

import (
	"math"
	"math/rand"

	"framewall/internal/pixbuf"
	"framewall/internal/preset"
)

// NoiseSource supplies the bounded random offsets used by the wood
// texture. *rand.Rand satisfies it; tests script it.
type NoiseSource interface {
	Intn(n int) int
}

// globalNoise falls back to the process RNG when the caller supplies
// no source.
type globalNoise struct{}

func (globalNoise) Intn(n int) int { return rand.Intn(n) }

// Render draws a border of the preset's texture around img and returns
// the enlarged buffer. A zero width returns img unchanged.
func Render(img *pixbuf.Buffer, p preset.Preset, width int, noise NoiseSource) *pixbuf.Buffer {
	if width == 0 {
		return img
	}
	switch p.Texture {
	case preset.TextureWood:
		return renderWood(img, p.Color, width, noise)
	case preset.TextureGold:
		return renderGold(img, p.Color, width)
	default:
		return renderPlain(img, p.Color, width)
	}
}

func renderPlain(img *pixbuf.Buffer, c pixbuf.Color, width int) *pixbuf.Buffer {
	out := pixbuf.NewFilled(img.Width+2*width, img.Height+2*width, c)
	out.Blit(img, width, width)
	return out
}

// renderWood fills the canvas with the base color, then draws one
// full-width vein row every 3 rows. Each vein's offset is one draw in
// [-15, 15] applied to all three channels. The interior paste comes
// last, so veins never show through the picture.
func renderWood(img *pixbuf.Buffer, c pixbuf.Color, width int, noise NoiseSource) *pixbuf.Buffer {
	if noise == nil {
		noise = globalNoise{}
	}
	out := pixbuf.NewFilled(img.Width+2*width, img.Height+2*width, c)
	for y := 0; y < out.Height; y += 3 {
		vein := c.Offset(noise.Intn(31) - 15)
		out.FillRect(0, y, out.Width, y+1, vein)
	}
	out.Blit(img, width, width)
	return out
}

// renderGold fills the canvas with the base color, then strokes
// concentric 2px rectangles every 6 pixels inward. Highlight intensity
// follows 30·sin(inset·0.25), truncated toward zero.
func renderGold(img *pixbuf.Buffer, c pixbuf.Color, width int) *pixbuf.Buffer {
	out := pixbuf.NewFilled(img.Width+2*width, img.Height+2*width, c)
	for i := 0; i < width; i += 6 {
		intensity := int(30 * math.Sin(float64(i)*0.25))
		strokeRect(out, i, i, out.Width-i, out.Height-i, 2, c.Offset(intensity))
	}
	out.Blit(img, width, width)
	return out
}

// strokeRect draws a rectangle outline of the given thickness with
// outer corners (x0,y0) and (x1,y1) exclusive, clipped to the buffer.
func strokeRect(b *pixbuf.Buffer, x0, y0, x1, y1, thickness int, c pixbuf.Color) {
	b.FillRect(x0, y0, x1, y0+thickness, c)
	b.FillRect(x0, y1-thickness, x1, y1, c)
	b.FillRect(x0, y0, x0+thickness, y1, c)
	b.FillRect(x1-thickness, y0, x1, y1, c)
}
