// Package effect contains beat-driven visual effects and the composite that draws
// them in order.
//
// An Effect holds only configuration fixed at construction. Drawing is a pure
// function of the beat phase: no state is carried from one frame to the next, so
// the same phase always produces the same draw calls.
package effect

import (
	"math"

	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

// Effect is the capability every visual effect implements.
type Effect interface {
	// Draw renders the effect for the given phase onto the active target of d.
	Draw(d render.Drawer, phase rhythm.BeatPhase)

	// Name is a human readable identifier used for diagnostics.
	Name() string
}

// barIndex returns floor(phase) mod n without converting to an integer type, so
// arbitrarily large phases cannot overflow.
func barIndex(phase rhythm.BeatPhase, n int) int {
	if n <= 1 {
		return 0
	}
	i := math.Mod(math.Floor(float64(phase)), float64(n))
	if i < 0 || math.IsNaN(i) {
		return 0
	}
	return int(i)
}
