package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/pulse/utils"
)

// Color is a straight-alpha RGB color. It implements color.Color so it can be
// handed to any image library.
type Color struct {
	colorful.Color
	A float64
}

var (
	Black = Color{Color: colorful.Color{R: 0, G: 0, B: 0}, A: 1}
	White = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}
)

// RGBA returns the alpha-premultiplied components in [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := utils.Clamp01(c.A)
	r = uint32(utils.Clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(utils.Clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(utils.Clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex parses a "#rrggbb" string into an opaque Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{Color: c, A: 1}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSV builds an opaque Color from hue (degrees), saturation and value.
func HSV(h, s, v float64) Color {
	return Color{Color: colorful.Hsv(h, s, v), A: 1}
}
