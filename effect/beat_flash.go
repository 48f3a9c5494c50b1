package effect

import (
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
	"github.com/robmorgan/pulse/utils"
)

// BeatFlash lights a full-height bar on every beat and lets it decay until the
// next one. The decay curve is a ShapeFunc; the default is a falling sawtooth.
type BeatFlash struct {
	numBars      int
	barWidth     float64
	canvasHeight float64
	color        render.Color
	shape        ShapeFunc
}

// NewBeatFlash creates a BeatFlash effect. A nil shape uses a falling sawtooth.
func NewBeatFlash(numBars int, barWidth, canvasHeight float64, color render.Color, shape ShapeFunc) *BeatFlash {
	if numBars < 1 {
		numBars = 1
	}
	if shape == nil {
		shape = BuildFixedSawtoothShapeFn(true)
	}
	return &BeatFlash{
		numBars:      numBars,
		barWidth:     barWidth,
		canvasHeight: canvasHeight,
		color:        color,
		shape:        shape,
	}
}

// Geometry returns the bottom-anchored rectangle drawn for phase.
func (b *BeatFlash) Geometry(phase rhythm.BeatPhase) (x, y, width, height float64) {
	i := barIndex(phase, b.numBars)
	height = b.canvasHeight * utils.Clamp01(b.shape(phase.Fraction()))
	return b.barWidth * float64(i), b.canvasHeight - height, b.barWidth, height
}

func (b *BeatFlash) Draw(d render.Drawer, phase rhythm.BeatPhase) {
	x, y, w, h := b.Geometry(phase)
	d.FillRect(x, y, w, h, b.color)
}

func (b *BeatFlash) Name() string {
	return "Beat Flash"
}
