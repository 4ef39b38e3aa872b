package pixbuf

// Buffer holds an RGB image as one flat slice for cache locality.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// New allocates a zeroed (black) buffer.
func New(w, h int) *Buffer {
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

// NewFilled allocates a buffer with every pixel set to c.
func NewFilled(w, h int, c Color) *Buffer {
	b := New(w, h)
	b.Fill(c)
	return b
}

// PixOffset returns the index of the first channel of (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 3
}

// At returns the pixel at (x, y). Coordinates must be in bounds.
func (b *Buffer) At(x, y int) Color {
	i := b.PixOffset(x, y)
	return Color{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Set writes the pixel at (x, y). Coordinates must be in bounds.
func (b *Buffer) Set(x, y int, c Color) {
	i := b.PixOffset(x, y)
	b.Pix[i] = c[0]
	b.Pix[i+1] = c[1]
	b.Pix[i+2] = c[2]
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.Pix); i += 3 {
		b.Pix[i] = c[0]
		b.Pix[i+1] = c[1]
		b.Pix[i+2] = c[2]
	}
}

// FillRect sets every pixel in [x0,x1)×[y0,y1) to c, clipped to the buffer.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, c Color) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}
	for y := y0; y < y1; y++ {
		i := b.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			b.Pix[i] = c[0]
			b.Pix[i+1] = c[1]
			b.Pix[i+2] = c[2]
			i += 3
		}
	}
}

// Blit copies src into b with its top-left corner at (dx, dy), clipped
// to b's bounds. Rows are moved with copy.
func (b *Buffer) Blit(src *Buffer, dx, dy int) {
	sx0, sy0 := 0, 0
	if dx < 0 {
		sx0 = -dx
		dx = 0
	}
	if dy < 0 {
		sy0 = -dy
		dy = 0
	}
	w := src.Width - sx0
	if dx+w > b.Width {
		w = b.Width - dx
	}
	h := src.Height - sy0
	if dy+h > b.Height {
		h = b.Height - dy
	}
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		srcOff := src.PixOffset(sx0, sy0+y)
		dstOff := b.PixOffset(dx, dy+y)
		copy(b.Pix[dstOff:dstOff+w*3], src.Pix[srcOff:srcOff+w*3])
	}
}

// Crop returns a copy of the region [x0,x1)×[y0,y1), clipped to the buffer.
// An empty region after clipping yields the buffer itself.
func (b *Buffer) Crop(x0, y0, x1, y1 int) *Buffer {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}
	if x1 <= x0 || y1 <= y0 {
		return b
	}
	w := x1 - x0
	h := y1 - y0
	out := New(w, h)
	for y := 0; y < h; y++ {
		srcOff := b.PixOffset(x0, y0+y)
		dstOff := out.PixOffset(0, y)
		copy(out.Pix[dstOff:dstOff+w*3], b.Pix[srcOff:srcOff+w*3])
	}
	return out
}

// Average returns the mean color over [x0,x1)×[y0,y1), clipped to the
// buffer, rounding each channel. Empty regions yield mid gray.
func (b *Buffer) Average(x0, y0, x1, y1 int) Color {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}
	if x1 <= x0 || y1 <= y0 {
		return Color{128, 128, 128}
	}

	var sumR, sumG, sumB float64
	for y := y0; y < y1; y++ {
		i := b.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			sumR += float64(b.Pix[i])
			sumG += float64(b.Pix[i+1])
			sumB += float64(b.Pix[i+2])
			i += 3
		}
	}
	n := float64((x1 - x0) * (y1 - y0))
	return Color{
		uint8(sumR/n + 0.5),
		uint8(sumG/n + 0.5),
		uint8(sumB/n + 0.5),
	}
}

// EdgeAverage returns the mean color of the outermost rows and columns.
// Corner pixels count toward both their row and their column, and a
// single-row or single-column buffer counts that line twice. Empty
// buffers yield mid gray.
func (b *Buffer) EdgeAverage() Color {
	if b.Width == 0 || b.Height == 0 {
		return Color{128, 128, 128}
	}

	var sumR, sumG, sumB float64
	var n int
	addRow := func(y int) {
		i := b.PixOffset(0, y)
		for x := 0; x < b.Width; x++ {
			sumR += float64(b.Pix[i])
			sumG += float64(b.Pix[i+1])
			sumB += float64(b.Pix[i+2])
			i += 3
		}
		n += b.Width
	}
	addCol := func(x int) {
		for y := 0; y < b.Height; y++ {
			i := b.PixOffset(x, y)
			sumR += float64(b.Pix[i])
			sumG += float64(b.Pix[i+1])
			sumB += float64(b.Pix[i+2])
		}
		n += b.Height
	}
	addRow(0)
	addRow(b.Height - 1)
	addCol(0)
	addCol(b.Width - 1)

	f := float64(n)
	return Color{
		uint8(sumR/f + 0.5),
		uint8(sumG/f + 0.5),
		uint8(sumB/f + 0.5),
	}
}
