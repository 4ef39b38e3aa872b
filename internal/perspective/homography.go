package perspective

import (
	"errors"
	"math"
)

// Point is a 2D position in pixel space.
type Point struct {
	X, Y float64
}

// Quad lists a quadrilateral's corners in top-left, top-right,
// bottom-right, bottom-left order.
type Quad [4]Point

// RectQuad returns the axis-aligned quad of a w×h rectangle.
func RectQuad(w, h float64) Quad {
	return Quad{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

// ErrDegenerateGeometry is returned when the four point pairs do not
// define an invertible projective transform (collinear corners, zero
// area).
var ErrDegenerateGeometry = errors.New("perspective: degenerate geometry")

// Homography computes the projective transform mapping each src corner
// to its dst counterpart. Standard four-point DLT: eight equations in
// the eight unknowns of H with h22 pinned to 1.
func Homography(src, dst Quad) (Mat3, error) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		a[2*i] = [8]float64{x, y, 1, 0, 0, 0, -u * x, -u * y}
		b[2*i] = u
		a[2*i+1] = [8]float64{0, 0, 0, x, y, 1, -v * x, -v * y}
		b[2*i+1] = v
	}
	h, ok := solve8(&a, &b)
	if !ok {
		return Mat3{}, ErrDegenerateGeometry
	}
	return Mat3{h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], 1}, nil
}

// solve8 solves the 8×8 system a·x = b in place by Gaussian elimination
// with partial pivoting. ok is false when a pivot vanishes.
func solve8(a *[8][8]float64, b *[8]float64) ([8]float64, bool) {
	for col := 0; col < 8; col++ {
		pivot := col
		max := math.Abs(a[col][col])
		for r := col + 1; r < 8; r++ {
			if v := math.Abs(a[r][col]); v > max {
				max = v
				pivot = r
			}
		}
		if max < 1e-10 {
			return [8]float64{}, false
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			b[pivot], b[col] = b[col], b[pivot]
		}
		for r := col + 1; r < 8; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < 8; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	var x [8]float64
	for r := 7; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < 8; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, true
}
