package pixbuf

// Color is an RGB pixel value.
type Color [3]uint8

// Gray returns the color with all three channels set to v.
func Gray(v uint8) Color {
	return Color{v, v, v}
}

// Clamp limits integer channel values to [0, 255] and packs them.
func Clamp(r, g, b int) Color {
	return Color{clampInt(r), clampInt(g), clampInt(b)}
}

// ClampF rounds float channel values and limits them to [0, 255].
func ClampF(r, g, b float64) Color {
	return Color{clamp255(r), clamp255(g), clamp255(b)}
}

// Scale multiplies every channel by f and clamps.
func (c Color) Scale(f float64) Color {
	return ClampF(float64(c[0])*f, float64(c[1])*f, float64(c[2])*f)
}

// Offset adds d to every channel and clamps.
func (c Color) Offset(d int) Color {
	return Clamp(int(c[0])+d, int(c[1])+d, int(c[2])+d)
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
