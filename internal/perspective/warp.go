package perspective

import (
	"math"

	"framewall/internal/pixbuf"
)

// Warp maps img through the src→dst homography into an outW×outH
// buffer. Every output pixel is back-mapped through the inverse
// transform and bilinearly sampled; points falling outside the source
// get fill, never an implicit black.
func Warp(img *pixbuf.Buffer, src, dst Quad, outW, outH int, fill pixbuf.Color) (*pixbuf.Buffer, error) {
	if img.Width < 1 || img.Height < 1 || outW < 1 || outH < 1 {
		return nil, ErrDegenerateGeometry
	}
	fwd, err := Homography(src, dst)
	if err != nil {
		return nil, err
	}
	if d := fwd.Det(); math.Abs(d) < 1e-12 {
		return nil, ErrDegenerateGeometry
	}
	inv := fwd.Inverse()

	out := pixbuf.NewFilled(outW, outH, fill)
	maxX := float64(img.Width - 1)
	maxY := float64(img.Height - 1)
	for dy := 0; dy < outH; dy++ {
		fy := float64(dy)
		for dx := 0; dx < outW; dx++ {
			sx, sy, ok := inv.Apply(float64(dx), fy)
			if !ok || sx < 0 || sy < 0 || sx > maxX || sy > maxY {
				continue
			}

			// Bilinear interpolation; +1 neighbors clamp at the
			// last row/column.
			x0 := int(sx)
			y0 := int(sy)
			x1 := x0 + 1
			if x1 > img.Width-1 {
				x1 = img.Width - 1
			}
			y1 := y0 + 1
			if y1 > img.Height-1 {
				y1 = img.Height - 1
			}
			wx := sx - float64(x0)
			wy := sy - float64(y0)

			c00 := samplePix(img, x0, y0)
			c10 := samplePix(img, x1, y0)
			c01 := samplePix(img, x0, y1)
			c11 := samplePix(img, x1, y1)

			r := lerp4(c00[0], c10[0], c01[0], c11[0], wx, wy)
			g := lerp4(c00[1], c10[1], c01[1], c11[1], wx, wy)
			b := lerp4(c00[2], c10[2], c01[2], c11[2], wx, wy)
			out.Set(dx, dy, pixbuf.ClampF(r, g, b))
		}
	}
	return out, nil
}

func samplePix(b *pixbuf.Buffer, x, y int) [3]float64 {
	i := b.PixOffset(x, y)
	return [3]float64{float64(b.Pix[i]), float64(b.Pix[i+1]), float64(b.Pix[i+2])}
}

func lerp4(v00, v10, v01, v11, fx, fy float64) float64 {
	return v00*(1-fx)*(1-fy) + v10*fx*(1-fy) + v01*(1-fx)*fy + v11*fx*fy
}
