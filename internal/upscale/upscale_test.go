package upscale

import (
	"errors"
	"path/filepath"
	"testing"

	"framewall/internal/imageio"
	"framewall/internal/pixbuf"
)

func TestResizeFactorOutOfRange(t *testing.T) {
	img := pixbuf.NewFilled(4, 4, pixbuf.Gray(100))
	for _, factor := range []int{-1, 0, 5, 10} {
		if _, err := Resize(img, factor); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("factor %d: expected ErrInvalidFactor, got %v", factor, err)
		}
	}
}

func TestResizeFactorOneIsIdentity(t *testing.T) {
	img := pixbuf.NewFilled(4, 4, pixbuf.Gray(100))
	got, err := Resize(img, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != img {
		t.Fatal("expected factor 1 to return the input buffer")
	}
}

func TestResizeDoublesDimensions(t *testing.T) {
	c := pixbuf.Color{210, 120, 30}
	img := pixbuf.NewFilled(8, 6, c)

	got, err := Resize(img, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Width != 16 || got.Height != 12 {
		t.Fatalf("expected 16x12, got %dx%d", got.Width, got.Height)
	}
	// Lanczos over a uniform image stays uniform.
	for y := 0; y < got.Height; y++ {
		for x := 0; x < got.Width; x++ {
			if got.At(x, y) != c {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, c, got.At(x, y))
			}
		}
	}
}

func TestResizeMaxFactor(t *testing.T) {
	img := pixbuf.NewFilled(3, 5, pixbuf.Gray(64))
	got, err := Resize(img, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Width != 12 || got.Height != 20 {
		t.Fatalf("expected 12x20, got %dx%d", got.Width, got.Height)
	}
}

func TestFileWritesUpscaledPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "original.png")
	dst := filepath.Join(dir, "original_upscaled.png")

	if err := imageio.Save(src, pixbuf.NewFilled(6, 4, pixbuf.Gray(90)), "png", 0); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	if err := File(src, dst, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := imageio.Load(dst)
	if err != nil {
		t.Fatalf("load result: %v", err)
	}
	if got.Width != 12 || got.Height != 8 {
		t.Fatalf("expected 12x8, got %dx%d", got.Width, got.Height)
	}
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := File(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), 2)
	if err == nil {
		t.Fatal("expected an error for a missing input")
	}
}
