package utils

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed interval spanned by lo and hi. The bounds may
// be given in either order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
