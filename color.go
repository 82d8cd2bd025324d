package icongen

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to an 8-bit color.RGBA with premultiplied alpha.
func (c RGBA) Color() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp255(clamp01(c.R) * a * 255)),
		G: uint8(clamp255(clamp01(c.G) * a * 255)),
		B: uint8(clamp255(clamp01(c.B) * a * 255)),
		A: uint8(clamp255(a * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(n.R, n.G, n.B).WithAlpha(float64(n.A) / 255)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) RGBA {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// WithAlpha returns the color with the given alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Default icon palette.
var (
	// Background is the canvas fill.
	Background = RGB8(240, 240, 240)

	// Foreground is the label fill.
	Foreground = RGB8(80, 80, 80)

	// BorderColor is the optional 1px frame.
	BorderColor = RGB8(180, 180, 180)
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp255 clamps a value to [0, 255] and rounds.
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v + 0.5
}
