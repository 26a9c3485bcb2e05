// Package colorutil provides shared color utilities for height rendering.
package colorutil

import (
	"image/color"
	"math"
)

// Common plot colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Ramp maps a normalized height t in [0, 1] to a color.
type Ramp func(t float64) color.RGBA

// Grayscale maps 0 to black and 1 to white.
func Grayscale(t float64) color.RGBA {
	v := uint8(clamp01(t) * 255)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// Hot runs black -> red -> yellow -> white, the classic thermal ramp.
func Hot(t float64) color.RGBA {
	t = clamp01(t)
	r := clamp01(t * 3)
	g := clamp01(t*3 - 1)
	b := clamp01(t*3 - 2)
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// Jet runs blue -> cyan -> yellow -> red.
func Jet(t float64) color.RGBA {
	t = clamp01(t)
	r := clamp01(1.5 - math.Abs(4*t-3))
	g := clamp01(1.5 - math.Abs(4*t-2))
	b := clamp01(1.5 - math.Abs(4*t-1))
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// RampByName returns the ramp for a colormap name. Names are the same ones
// the 2D map export understands.
func RampByName(name string) (Ramp, bool) {
	switch name {
	case "gray", "greys", "bone":
		return Grayscale, true
	case "hot", "pink":
		return Hot, true
	case "jet", "rainbow", "ocean":
		return Jet, true
	}
	return nil, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
