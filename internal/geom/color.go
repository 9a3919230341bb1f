package geom

import (
	"image/color"
	"math"
)

type Color struct{ R, G, B uint8 }

var (
	Black = Color{}
	White = Color{255, 255, 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// RGB builds a Color from ints, clamping each channel to 0..255.
func RGB(r, g, b int) Color {
	return Color{R: clamp255(r), G: clamp255(g), B: clamp255(b)}
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Scale multiplies every channel by f, truncating toward zero.
func (c Color) Scale(f float64) Color {
	return RGB(int(float64(c.R)*f), int(float64(c.G)*f), int(float64(c.B)*f))
}

func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255} }

// Hue wraps a degree value into [0,360).
func Hue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueToColor converts a hue in degrees [0,360) to RGB at full saturation and
// value. Channels are truncated, not rounded. Hues outside the range are black.
func HueToColor(hue float64) Color {
	h := hue / 60.0
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch {
	case h >= 0 && h < 1:
		r, g, b = 1, x, 0
	case h >= 1 && h < 2:
		r, g, b = x, 1, 0
	case h >= 2 && h < 3:
		r, g, b = 0, 1, x
	case h >= 3 && h < 4:
		r, g, b = 0, x, 1
	case h >= 4 && h < 5:
		r, g, b = x, 0, 1
	case h >= 5 && h < 6:
		r, g, b = 1, 0, x
	default:
		return Black
	}
	return Color{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
