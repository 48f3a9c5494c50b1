package rhythm

import "math"

// BeatPhase is the number of beats elapsed since the metronome was last reset.
// The integer part indexes the current beat and the fractional part is the
// progress through it.
type BeatPhase float64

// Beat returns the zero-based index of the current beat.
func (p BeatPhase) Beat() int64 {
	return int64(math.Floor(float64(p)))
}

// Fraction returns the progress through the current beat in [0,1).
func (p BeatPhase) Fraction() float64 {
	v := float64(p)
	return v - math.Floor(v)
}
