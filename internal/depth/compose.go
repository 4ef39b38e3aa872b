package depth

import (
	"math"

	"framewall/internal/perspective"
	"framewall/internal/pixbuf"
)

// Compose renders framed as a wall-mounted 3D object: perspective front
// face, extruded right/bottom/top faces, soft right/bottom shadows, and
// a crop down to the minimal region the effect needs. Warp failures and
// sources smaller than 2×2 degrade to returning framed unchanged; depth
// is cosmetic and never fails a request.
func Compose(framed *pixbuf.Buffer, cfg Config) *pixbuf.Buffer {
	w, h := framed.Width, framed.Height
	if w < 2 || h < 2 {
		return framed
	}
	p := styleParams(cfg.Style, cfg.Intensity)

	wall := pixbuf.NewFilled(w+p.expansion, h+p.expansion, pixbuf.Gray(cfg.WallColor))
	frameX := p.expansion / 6
	frameY := p.expansion / 8

	front, fill, err := warpFront(framed, p)
	if err != nil {
		return framed
	}

	pasteFront(wall, front, fill, frameX, frameY)
	drawSideFaces(wall, framed, frameX, frameY, w, h, p)
	drawShadows(wall, frameX, frameY, w, h, p, cfg.WallColor)

	return cropMinimal(wall, frameX, frameY, w, h, p.depth)
}

// warpFront leans the framed image forward: the top-left corner moves
// inward, the bottom-right outward. The fill color is the source's own
// edge average so out-of-quad pixels blend instead of ringing.
func warpFront(img *pixbuf.Buffer, p params) (*pixbuf.Buffer, pixbuf.Color, error) {
	w, h := img.Width, img.Height
	xOff, yOff := perspectiveOffsets(p)

	src := perspective.RectQuad(float64(w), float64(h))
	dst := perspective.Quad{
		{X: float64(xOff), Y: float64(yOff)},
		{X: float64(w + xOff), Y: 0},
		{X: float64(w + 2*xOff), Y: float64(h - yOff)},
		{X: float64(2 * xOff), Y: float64(h)},
	}
	fill := img.EdgeAverage()
	out, err := perspective.Warp(img, src, dst, w+2*xOff+20, h+yOff+20, fill)
	return out, fill, err
}

// perspectiveOffsets converts depth and lean into pixel displacements,
// never less than one pixel each.
func perspectiveOffsets(p params) (int, int) {
	xOff := int(float64(p.depth) * p.angle)
	if xOff < 1 {
		xOff = 1
	}
	yOff := int(float64(p.depth) * p.angle * 0.6)
	if yOff < 1 {
		yOff = 1
	}
	return xOff, yOff
}

// pasteFront copies the warped face onto the wall at (frameX, frameY).
// Fill-colored pixels within a 5px band of the warp buffer's border are
// interpolation artifacts and stay transparent; fill-colored pixels
// deeper inside are genuine content and survive the paste. Interior
// row segments move with bulk copies.
func pasteFront(wall, front *pixbuf.Buffer, fill pixbuf.Color, frameX, frameY int) {
	validW := front.Width
	if frameX+validW > wall.Width {
		validW = wall.Width - frameX
	}
	validH := front.Height
	if frameY+validH > wall.Height {
		validH = wall.Height - frameY
	}
	if validW <= 0 || validH <= 0 {
		return
	}

	for y := 0; y < validH; y++ {
		srcOff := front.PixOffset(0, y)
		dstOff := wall.PixOffset(frameX, frameY+y)
		if y < 5 || y >= validH-5 {
			copyRowMasked(wall, front, srcOff, dstOff, 0, validW, fill)
			continue
		}
		left := 5
		if left > validW {
			left = validW
		}
		right := validW - 5
		if right < left {
			right = left
		}
		copyRowMasked(wall, front, srcOff, dstOff, 0, left, fill)
		copy(wall.Pix[dstOff+left*3:dstOff+right*3], front.Pix[srcOff+left*3:srcOff+right*3])
		copyRowMasked(wall, front, srcOff, dstOff, right, validW, fill)
	}
}

// copyRowMasked copies pixels x ∈ [x0,x1) of one row, skipping those
// equal to fill.
func copyRowMasked(wall, front *pixbuf.Buffer, srcOff, dstOff, x0, x1 int, fill pixbuf.Color) {
	s := srcOff + x0*3
	d := dstOff + x0*3
	for x := x0; x < x1; x++ {
		if front.Pix[s] != fill[0] || front.Pix[s+1] != fill[1] || front.Pix[s+2] != fill[2] {
			wall.Pix[d] = front.Pix[s]
			wall.Pix[d+1] = front.Pix[s+1]
			wall.Pix[d+2] = front.Pix[s+2]
		}
		s += 3
		d += 3
	}
}

// drawSideFaces extrudes the right, bottom, and top faces from the
// front face's edges. Face color comes from the framed image's right
// edge, darkened to read as a surface turned away from the light.
func drawSideFaces(wall, framed *pixbuf.Buffer, frameX, frameY, w, h int, p params) {
	cols := 10
	if w <= 10 {
		cols = 5
	}
	base := framed.Average(w-cols, 0, w, h).Scale(0.8)

	drawRightFace(wall, base, frameX, frameY, w, h, p)
	drawBottomFace(wall, base, frameX, frameY, w, h, p)
	drawTopFace(wall, base, frameX, frameY, w, h, p)
}

// drawRightFace shades the right extrusion: light falls off down the
// face (0.6 to 0.45) and into its depth (up to 30%); the strip widens
// toward the bottom.
func drawRightFace(wall *pixbuf.Buffer, base pixbuf.Color, frameX, frameY, w, h int, p params) {
	xOff, yOff := perspectiveOffsets(p)
	for y := 0; y < h; y++ {
		progress := float64(y) / float64(h)
		curY := frameY + y + int(float64(yOff)*(1-progress))
		if curY >= wall.Height {
			continue
		}
		startX := frameX + w + int(float64(xOff)*(1+progress))
		span := int(float64(p.depth) * (0.8 + 0.2*progress))
		endX := startX + span
		if endX > wall.Width {
			endX = wall.Width
		}
		side := base.Scale(0.6 - progress*0.15)
		div := float64(span)
		if div < 1 {
			div = 1
		}
		for x := startX; x < endX; x++ {
			fade := 1.0 - (float64(x-startX)/div)*0.3
			wall.Set(x, curY, side.Scale(fade))
		}
	}
}

// drawBottomFace shades the bottom extrusion (0.5 to 0.4, depth fade up
// to 40%); its start row climbs as the perspective tilts the far edge.
func drawBottomFace(wall *pixbuf.Buffer, base pixbuf.Color, frameX, frameY, w, h int, p params) {
	xOff, yOff := perspectiveOffsets(p)
	for x := 0; x < w; x++ {
		progress := float64(x) / float64(w)
		curX := frameX + x + int(float64(xOff)*(1+progress))
		if curX >= wall.Width {
			continue
		}
		startY := frameY + h - int(float64(yOff)*progress)
		span := int(float64(p.depth) * (0.7 + 0.3*progress))
		endY := startY + span
		if endY > wall.Height {
			endY = wall.Height
		}
		side := base.Scale(0.5 - progress*0.1)
		div := float64(span)
		if div < 1 {
			div = 1
		}
		for y := startY; y < endY; y++ {
			fade := 1.0 - (float64(y-startY)/div)*0.4
			wall.Set(curX, y, side.Scale(fade))
		}
	}
}

// drawTopFace shades the narrow top extrusion. It receives the most
// light (0.9 to 0.8) and fades the least.
func drawTopFace(wall *pixbuf.Buffer, base pixbuf.Color, frameX, frameY, w, h int, p params) {
	xOff, yOff := perspectiveOffsets(p)
	span := int(float64(p.depth) * 0.3)
	div := float64(span)
	if div < 1 {
		div = 1
	}
	for x := 0; x < w; x++ {
		progress := float64(x) / float64(w)
		curX := frameX + x + int(float64(xOff)*progress)
		if curX >= wall.Width {
			continue
		}
		startY := frameY + int(float64(yOff)*(1-progress))
		endY := startY + span
		if endY > wall.Height {
			endY = wall.Height
		}
		side := base.Scale(0.9 - progress*0.1)
		for y := startY; y < endY; y++ {
			fade := 1.0 - (float64(y-startY)/div)*0.2
			wall.Set(curX, y, side.Scale(fade))
		}
	}
}

// drawShadows blends soft gray shadows strictly right of and below the
// object. Falloff is exponential; the bottom strip tapers rightward and
// weakens away from the object's horizontal center.
func drawShadows(wall *pixbuf.Buffer, frameX, frameY, w, h int, p params, wallColor uint8) {
	strength := 0.15 * p.shadow
	wallF := float64(wallColor)
	baseShadow := wallF * (1 - strength)

	spanR := int(float64(p.depth) * 0.8)
	for i := 0; i < spanR; i++ {
		fade := math.Exp(-3.0*float64(i)/float64(spanR)) * strength
		x := frameX + w + i
		if x >= wall.Width {
			break
		}
		yEnd := frameY + h
		if yEnd > wall.Height {
			yEnd = wall.Height
		}
		gray := baseShadow + (wallF-baseShadow)*(1-fade)
		for y := frameY; y < yEnd; y++ {
			blendShadow(wall, x, y, fade, gray)
		}
	}

	spanB := int(float64(p.depth) * 0.6)
	for i := 0; i < spanB; i++ {
		fade := math.Exp(-3.0*float64(i)/float64(spanB)) * strength
		y := frameY + h + i
		if y >= wall.Height {
			break
		}
		xEnd := frameX + w + int(0.3*float64(i))
		if xEnd > wall.Width {
			xEnd = wall.Width
		}
		cx := float64(frameX) + float64(w)/2
		halfW := float64(w) / 2
		for x := frameX; x < xEnd; x++ {
			f := fade * (1 - math.Abs(float64(x)-cx)/halfW*0.4)
			if f <= 0 {
				continue
			}
			gray := baseShadow + (wallF-baseShadow)*(1-f)
			blendShadow(wall, x, y, f, gray)
		}
	}
}

// blendShadow mixes the pixel at (x, y) toward the scalar shadow gray
// by fade.
func blendShadow(wall *pixbuf.Buffer, x, y int, fade, gray float64) {
	i := wall.PixOffset(x, y)
	keep := 1 - fade
	mix := gray * fade
	wall.Set(x, y, pixbuf.ClampF(
		float64(wall.Pix[i])*keep+mix,
		float64(wall.Pix[i+1])*keep+mix,
		float64(wall.Pix[i+2])*keep+mix,
	))
}

// cropMinimal trims the wall to a 5px-or-less left/top margin and just
// enough right/bottom room for the side faces and shadows.
func cropMinimal(wall *pixbuf.Buffer, frameX, frameY, w, h, depth int) *pixbuf.Buffer {
	left := frameX - 5
	if left < 5 {
		left = 5
	}
	top := frameY - 5
	if top < 5 {
		top = 5
	}
	right := frameX + w + int(1.5*float64(depth))
	bottom := frameY + h + int(1.2*float64(depth))
	return wall.Crop(left, top, right, bottom)
}
