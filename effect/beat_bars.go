package effect

import (
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

// BeatBars draws one rising bar per beat, cycling through numBars columns.
type BeatBars struct {
	numBars      int
	barWidth     float64
	canvasHeight float64
	color        render.Color
}

// NewBeatBars creates a BeatBars effect. A non-positive bar count is treated as one.
func NewBeatBars(numBars int, barWidth, canvasHeight float64, color render.Color) *BeatBars {
	if numBars < 1 {
		numBars = 1
	}
	return &BeatBars{
		numBars:      numBars,
		barWidth:     barWidth,
		canvasHeight: canvasHeight,
		color:        color,
	}
}

// Geometry returns the bottom-anchored rectangle drawn for phase.
func (b *BeatBars) Geometry(phase rhythm.BeatPhase) (x, y, width, height float64) {
	i := barIndex(phase, b.numBars)
	height = b.canvasHeight * phase.Fraction()
	return b.barWidth * float64(i), b.canvasHeight - height, b.barWidth, height
}

func (b *BeatBars) Draw(d render.Drawer, phase rhythm.BeatPhase) {
	x, y, w, h := b.Geometry(phase)
	d.FillRect(x, y, w, h, b.color)
}

func (b *BeatBars) Name() string {
	return "Beat Bars"
}
