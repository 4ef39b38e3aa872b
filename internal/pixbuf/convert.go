package pixbuf

import (
	"image"
	"image/color"
)

// FromImage converts any image to a Buffer, dropping alpha.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := New(w, h)

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			srcOff := (bounds.Min.Y+y-n.Rect.Min.Y)*n.Stride + (bounds.Min.X-n.Rect.Min.X)*4
			dstOff := out.PixOffset(0, y)
			for x := 0; x < w; x++ {
				out.Pix[dstOff] = n.Pix[srcOff]
				out.Pix[dstOff+1] = n.Pix[srcOff+1]
				out.Pix[dstOff+2] = n.Pix[srcOff+2]
				srcOff += 4
				dstOff += 3
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		dstOff := out.PixOffset(0, y)
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Pix[dstOff] = c.R
			out.Pix[dstOff+1] = c.G
			out.Pix[dstOff+2] = c.B
			dstOff += 3
		}
	}
	return out
}

// ToNRGBA converts the buffer to a fully opaque NRGBA image.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		srcOff := b.PixOffset(0, y)
		dstOff := y * dst.Stride
		for x := 0; x < b.Width; x++ {
			dst.Pix[dstOff] = b.Pix[srcOff]
			dst.Pix[dstOff+1] = b.Pix[srcOff+1]
			dst.Pix[dstOff+2] = b.Pix[srcOff+2]
			dst.Pix[dstOff+3] = 255
			srcOff += 3
			dstOff += 4
		}
	}
	return dst
}
