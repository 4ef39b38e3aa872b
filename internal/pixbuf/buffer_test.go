package pixbuf

import (
	"image"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		r, g, b int
		want    Color
	}{
		{0, 128, 255, Color{0, 128, 255}},
		{-10, 300, 42, Color{0, 255, 42}},
		{256, -1, 0, Color{255, 0, 0}},
	}
	for _, c := range cases {
		got := Clamp(c.r, c.g, c.b)
		if got != c.want {
			t.Errorf("Clamp(%d, %d, %d): expected %v, got %v", c.r, c.g, c.b, c.want, got)
		}
	}
}

func TestClampFRounds(t *testing.T) {
	if got := ClampF(1.4, 1.5, 254.6); got != (Color{1, 2, 255}) {
		t.Errorf("expected {1 2 255}, got %v", got)
	}
	if got := ClampF(-3.2, 256.1, 0); got != (Color{0, 255, 0}) {
		t.Errorf("expected {0 255 0}, got %v", got)
	}
}

func TestColorScale(t *testing.T) {
	c := Color{100, 200, 40}
	if got := c.Scale(0.5); got != (Color{50, 100, 20}) {
		t.Errorf("expected {50 100 20}, got %v", got)
	}
	if got := c.Scale(2.0); got != (Color{200, 255, 80}) {
		t.Errorf("expected {200 255 80}, got %v", got)
	}
	if got := c.Scale(0); got != (Color{0, 0, 0}) {
		t.Errorf("expected black, got %v", got)
	}
}

func TestColorOffset(t *testing.T) {
	c := Color{10, 128, 250}
	if got := c.Offset(15); got != (Color{25, 143, 255}) {
		t.Errorf("expected {25 143 255}, got %v", got)
	}
	if got := c.Offset(-15); got != (Color{0, 113, 235}) {
		t.Errorf("expected {0 113 235}, got %v", got)
	}
}

func TestSetAt(t *testing.T) {
	b := New(4, 3)
	b.Set(2, 1, Color{9, 8, 7})
	if got := b.At(2, 1); got != (Color{9, 8, 7}) {
		t.Errorf("expected {9 8 7}, got %v", got)
	}
	if got := b.At(1, 2); got != (Color{0, 0, 0}) {
		t.Errorf("expected untouched pixel to stay black, got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewFilled(2, 2, Color{5, 5, 5})
	c := b.Clone()
	c.Set(0, 0, Color{200, 0, 0})
	if b.At(0, 0) != (Color{5, 5, 5}) {
		t.Error("mutating the clone changed the source")
	}
}

func TestFillRectClips(t *testing.T) {
	b := New(4, 4)
	b.FillRect(-2, -2, 2, 2, Color{1, 2, 3})
	if b.At(0, 0) != (Color{1, 2, 3}) || b.At(1, 1) != (Color{1, 2, 3}) {
		t.Error("expected clipped fill to cover the in-bounds corner")
	}
	if b.At(2, 2) != (Color{0, 0, 0}) {
		t.Error("fill leaked past its bounds")
	}
}

func TestBlit(t *testing.T) {
	dst := New(4, 4)
	src := NewFilled(2, 2, Color{7, 7, 7})
	dst.Blit(src, 1, 1)
	if dst.At(1, 1) != (Color{7, 7, 7}) || dst.At(2, 2) != (Color{7, 7, 7}) {
		t.Error("expected source pasted at (1,1)")
	}
	if dst.At(0, 0) != (Color{0, 0, 0}) || dst.At(3, 3) != (Color{0, 0, 0}) {
		t.Error("paste touched pixels outside the source footprint")
	}

	// Partially off-canvas paste keeps the overlap.
	dst2 := New(4, 4)
	dst2.Blit(src, 3, 3)
	if dst2.At(3, 3) != (Color{7, 7, 7}) {
		t.Error("expected clipped paste to keep the overlapping pixel")
	}
	dst3 := New(4, 4)
	dst3.Blit(src, -1, -1)
	if dst3.At(0, 0) != (Color{7, 7, 7}) {
		t.Error("expected negative-offset paste to keep the overlapping pixel")
	}
	if dst3.At(1, 1) != (Color{0, 0, 0}) {
		t.Error("negative-offset paste copied too much")
	}
}

func TestCrop(t *testing.T) {
	b := New(4, 4)
	b.Set(2, 1, Color{11, 12, 13})
	c := b.Crop(1, 1, 4, 3)
	if c.Width != 3 || c.Height != 2 {
		t.Fatalf("expected 3x2 crop, got %dx%d", c.Width, c.Height)
	}
	if c.At(1, 0) != (Color{11, 12, 13}) {
		t.Errorf("expected marker at (1,0), got %v", c.At(1, 0))
	}
}

func TestAverage(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, Color{0, 0, 0})
	b.Set(1, 0, Color{255, 0, 0})
	b.Set(0, 1, Color{0, 255, 0})
	b.Set(1, 1, Color{255, 255, 255})
	got := b.Average(0, 0, 2, 2)
	// Channel means 127.5 round to 128.
	if got != (Color{128, 128, 64}) {
		t.Errorf("expected {128 128 64}, got %v", got)
	}

	if got := b.Average(5, 5, 6, 6); got != (Color{128, 128, 128}) {
		t.Errorf("expected mid gray for empty region, got %v", got)
	}
}

func TestEdgeAverage(t *testing.T) {
	// 3x3: center pixel must not contribute.
	b := NewFilled(3, 3, Color{10, 10, 10})
	b.Set(1, 1, Color{255, 255, 255})
	if got := b.EdgeAverage(); got != (Color{10, 10, 10}) {
		t.Errorf("expected edge mean to ignore the interior, got %v", got)
	}

	// Corners weigh double: 2x2 all-corner buffer with one bright pixel.
	c := NewFilled(2, 2, Color{0, 0, 0})
	c.Set(0, 0, Color{120, 120, 120})
	// Pixel (0,0) appears in the top row and the left column: 240 over 8 samples.
	if got := c.EdgeAverage(); got != (Color{30, 30, 30}) {
		t.Errorf("expected {30 30 30}, got %v", got)
	}

	empty := New(0, 0)
	if got := empty.EdgeAverage(); got != (Color{128, 128, 128}) {
		t.Errorf("expected mid gray for empty buffer, got %v", got)
	}
}

func TestFromImageDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 10, 20, 30, 255
	img.Pix[4], img.Pix[5], img.Pix[6], img.Pix[7] = 40, 50, 60, 0
	b := FromImage(img)
	if b.Width != 2 || b.Height != 1 {
		t.Fatalf("expected 2x1 buffer, got %dx%d", b.Width, b.Height)
	}
	if b.At(0, 0) != (Color{10, 20, 30}) || b.At(1, 0) != (Color{40, 50, 60}) {
		t.Errorf("unexpected pixels: %v, %v", b.At(0, 0), b.At(1, 0))
	}
}

func TestToNRGBARoundTrip(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, Color{1, 2, 3})
	b.Set(1, 1, Color{250, 251, 252})
	img := b.ToNRGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	back := FromImage(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if back.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, b.At(x, y), back.At(x, y))
			}
		}
	}
	if img.Pix[3] != 255 {
		t.Error("expected opaque alpha")
	}
}
