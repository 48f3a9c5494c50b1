package effect

import "github.com/fogleman/ease"

// ShapeFunc maps the progress through a beat ([0,1)) onto a level in [0,1].
type ShapeFunc func(phase float64) float64

// BuildFixedSawtoothShapeFn returns the shape function for a sawtooth wave in a fixed direction.
func BuildFixedSawtoothShapeFn(down bool) ShapeFunc {
	if down {
		return func(phase float64) float64 {
			return 1.0 - phase
		}
	}
	return func(phase float64) float64 {
		return phase
	}
}

// Eased runs the beat progress through an easing curve before shaping it.
func Eased(shape ShapeFunc, fn ease.Function) ShapeFunc {
	if fn == nil {
		return shape
	}
	return func(phase float64) float64 {
		return shape(fn(phase))
	}
}
