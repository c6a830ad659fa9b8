// Package palette implements the deterministic color pipeline: hue and value derivation, composition and finalization.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Precondition violations reported by the derivation functions.
var (
	ErrHueCount   = errors.New("hue count must be at least 1")
	ErrValueCount = errors.New("value count must be at least 2")
	ErrEmptyGrid  = errors.New("grid has no swatches")
)

// Color is an opaque 8-bit RGB swatch color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the swatch to a fully opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the lowercase #rrggbb form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// HSB converts a hue/saturation/brightness triple to RGB.
// Hue is a cyclic fraction and is wrapped modulo 1; saturation and brightness are in [0,1].
func HSB(hue, saturation, brightness float64) Color {
	h := hue - math.Floor(hue)
	// hues a hair below zero round up to exactly 1, which go-colorful maps to gray
	if h >= 1 {
		h = 0
	}
	r, g, b := colorful.Hsv(h*360, saturation, brightness).RGB255()
	return Color{R: r, G: g, B: b}
}
