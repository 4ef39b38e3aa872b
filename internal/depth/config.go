package depth

// Style selects the strength family of the wall-depth rendering.
type Style string

const (
	StyleSubtle    Style = "subtle"
	StyleRealistic Style = "realistic"
	StyleDramatic  Style = "dramatic"
)

// Config carries the caller's depth knobs. Intensity scales the
// expansion and extrusion of the chosen style.
type Config struct {
	Enabled   bool
	Intensity float64 // [0.1, 1.0]
	Style     Style
	WallColor uint8 // [200, 255], used for all three wall channels
}

// params is the style table resolved against an intensity. The four
// values stay strictly ordered Subtle < Realistic < Dramatic.
type params struct {
	expansion int     // canvas growth in px
	depth     int     // extrusion depth in px
	shadow    float64 // shadow intensity
	angle     float64 // perspective lean
}

func styleParams(s Style, intensity float64) params {
	switch s {
	case StyleSubtle:
		return params{int(40 * intensity), int(15 * intensity), 0.6, 0.15}
	case StyleDramatic:
		return params{int(60 * intensity), int(30 * intensity), 1.0, 0.35}
	default:
		return params{int(50 * intensity), int(20 * intensity), 0.8, 0.25}
	}
}
