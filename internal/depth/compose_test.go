package depth

import (
	"testing"

	"framewall/internal/pixbuf"
)

func TestStyleParamsOrdering(t *testing.T) {
	s := styleParams(StyleSubtle, 1.0)
	r := styleParams(StyleRealistic, 1.0)
	d := styleParams(StyleDramatic, 1.0)

	if !(s.expansion < r.expansion && r.expansion < d.expansion) {
		t.Errorf("expansion not ordered: %d, %d, %d", s.expansion, r.expansion, d.expansion)
	}
	if !(s.depth < r.depth && r.depth < d.depth) {
		t.Errorf("depth not ordered: %d, %d, %d", s.depth, r.depth, d.depth)
	}
	if !(s.shadow < r.shadow && r.shadow < d.shadow) {
		t.Errorf("shadow not ordered: %g, %g, %g", s.shadow, r.shadow, d.shadow)
	}
	if !(s.angle < r.angle && r.angle < d.angle) {
		t.Errorf("angle not ordered: %g, %g, %g", s.angle, r.angle, d.angle)
	}
}

func TestStyleParamsIntensityScaling(t *testing.T) {
	half := styleParams(StyleSubtle, 0.5)
	full := styleParams(StyleSubtle, 1.0)
	if half.expansion != 20 || half.depth != 7 {
		t.Errorf("expected 20/7 at half intensity, got %d/%d", half.expansion, half.depth)
	}
	if full.expansion != 40 || full.depth != 15 {
		t.Errorf("expected 40/15 at full intensity, got %d/%d", full.expansion, full.depth)
	}
	if half.shadow != full.shadow || half.angle != full.angle {
		t.Error("shadow and angle must not scale with intensity")
	}
}

func TestStyleParamsUnknownFallsBackToRealistic(t *testing.T) {
	got := styleParams(Style("bogus"), 1.0)
	want := styleParams(StyleRealistic, 1.0)
	if got != want {
		t.Errorf("expected realistic params, got %+v", got)
	}
}

func TestComposeTinyInputFallback(t *testing.T) {
	cfg := Config{Enabled: true, Intensity: 0.5, Style: StyleSubtle, WallColor: 240}
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {1, 5}, {5, 1}} {
		img := pixbuf.New(dims[0], dims[1])
		if out := Compose(img, cfg); out != img {
			t.Errorf("%dx%d: expected the input buffer back", dims[0], dims[1])
		}
	}
}

func TestComposeSubtleDimensions(t *testing.T) {
	img := pixbuf.NewFilled(100, 100, pixbuf.Color{255, 0, 0})
	out := Compose(img, Config{Enabled: true, Intensity: 0.5, Style: StyleSubtle, WallColor: 240})

	// expansion 20, depth 7, frame origin (3,2); crop [5,113)x[5,110).
	if out.Width != 108 || out.Height != 105 {
		t.Fatalf("expected 108x105, got %dx%d", out.Width, out.Height)
	}
}

func TestComposeIntensityGrowsCanvas(t *testing.T) {
	img := pixbuf.NewFilled(100, 100, pixbuf.Color{255, 0, 0})
	half := Compose(img, Config{Enabled: true, Intensity: 0.5, Style: StyleSubtle, WallColor: 240})
	full := Compose(img, Config{Enabled: true, Intensity: 1.0, Style: StyleSubtle, WallColor: 240})
	if full.Width <= half.Width || full.Height <= half.Height {
		t.Fatalf("expected canvas to grow with intensity: %dx%d vs %dx%d",
			half.Width, half.Height, full.Width, full.Height)
	}
}

func TestComposeDramaticScene(t *testing.T) {
	wall := pixbuf.Color{240, 240, 240}
	img := pixbuf.NewFilled(100, 100, pixbuf.Color{255, 0, 0})
	out := Compose(img, Config{Enabled: true, Intensity: 1.0, Style: StyleDramatic, WallColor: 240})

	// expansion 60, depth 30, frame origin (10,7); crop [5,155)x[5,142).
	// 1.2*30 lands just under 36 in binary floating point, so the
	// bottom extension truncates to 35.
	if out.Width != 150 || out.Height != 137 {
		t.Fatalf("expected 150x137, got %dx%d", out.Width, out.Height)
	}

	// Nothing renders above or left of the object: the trimmed margin
	// stays pure wall.
	for x := 0; x < out.Width; x++ {
		for y := 0; y < 2; y++ {
			if got := out.At(x, y); got != wall {
				t.Fatalf("top margin (%d,%d): expected wall, got %v", x, y, got)
			}
		}
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < 5; x++ {
			if got := out.At(x, y); got != wall {
				t.Fatalf("left margin (%d,%d): expected wall, got %v", x, y, got)
			}
		}
	}

	// Front-face content begins promptly after the margin.
	if got := out.At(13, 55); got != (pixbuf.Color{255, 0, 0}) {
		t.Errorf("front face pixel: expected red, got %v", got)
	}

	// The first right-shadow column (canvas x = frameX+width) blends the
	// red front overhang toward the shadow gray: fade 0.15 against
	// gray 234.6 gives (252, 35, 35).
	if got := out.At(105, 12); got != (pixbuf.Color{252, 35, 35}) {
		t.Errorf("shadow-on-content pixel: expected {252 35 35}, got %v", got)
	}

	// Right side face at its top row: edge color 255*0.8=204 scaled by
	// light 0.6 gives 122, then the shadow at column offset 10 blends
	// toward gray: (127, 10, 10).
	if got := out.At(115, 8); got != (pixbuf.Color{127, 10, 10}) {
		t.Errorf("right face pixel: expected {127 10 10}, got %v", got)
	}
}

func TestComposeUnknownStyleMatchesRealistic(t *testing.T) {
	img := pixbuf.NewFilled(60, 40, pixbuf.Color{10, 200, 30})
	a := Compose(img, Config{Enabled: true, Intensity: 1.0, Style: Style("bogus"), WallColor: 220})
	b := Compose(img, Config{Enabled: true, Intensity: 1.0, Style: StyleRealistic, WallColor: 220})
	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("expected identical dimensions, got %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
}

func TestPasteFrontMask(t *testing.T) {
	wallGray := pixbuf.Color{230, 230, 230}
	fill := pixbuf.Color{1, 2, 3}
	wall := pixbuf.NewFilled(30, 30, wallGray)
	front := pixbuf.NewFilled(20, 20, fill)

	pasteFront(wall, front, fill, 0, 0)

	// Band pixels equal to the fill are artifacts: the wall shows.
	for _, pt := range [][2]int{{0, 0}, {4, 10}, {10, 4}, {19, 19}, {15, 2}} {
		if got := wall.At(pt[0], pt[1]); got != wallGray {
			t.Errorf("band pixel (%d,%d): expected wall, got %v", pt[0], pt[1], got)
		}
	}
	// Deeper fill-colored pixels are genuine content and survive.
	for _, pt := range [][2]int{{5, 5}, {10, 10}, {14, 14}} {
		if got := wall.At(pt[0], pt[1]); got != fill {
			t.Errorf("interior pixel (%d,%d): expected fill content, got %v", pt[0], pt[1], got)
		}
	}
}

func TestPasteFrontKeepsNonFillInBand(t *testing.T) {
	wallGray := pixbuf.Color{230, 230, 230}
	fill := pixbuf.Color{1, 2, 3}
	wall := pixbuf.NewFilled(30, 30, wallGray)
	front := pixbuf.NewFilled(20, 20, fill)
	content := pixbuf.Color{200, 100, 50}
	front.Set(0, 0, content)
	front.Set(19, 10, content)

	pasteFront(wall, front, fill, 2, 2)

	if got := wall.At(2, 2); got != content {
		t.Errorf("band content pixel: expected %v, got %v", content, got)
	}
	if got := wall.At(21, 12); got != content {
		t.Errorf("band content pixel: expected %v, got %v", content, got)
	}
}
