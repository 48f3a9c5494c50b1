package effect

import (
	"math"

	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

const (
	// waveColumnScale converts a pixel column into radians.
	waveColumnScale = 100.0
	waveThickness   = 2.0
)

// Wave draws a horizontal sine wave that scrolls continuously with the phase.
type Wave struct {
	amplitude float64
	frequency float64
	yOffset   float64
	width     int
	color     render.Color
}

// NewWave creates a Wave spanning width pixel columns.
func NewWave(amplitude, frequency, yOffset float64, width int, color render.Color) *Wave {
	return &Wave{
		amplitude: amplitude,
		frequency: frequency,
		yOffset:   yOffset,
		width:     width,
		color:     color,
	}
}

// Y returns the height of the wave at column x for phase.
func (w *Wave) Y(x float64, phase rhythm.BeatPhase) float64 {
	return w.yOffset + w.amplitude*math.Sin(x/waveColumnScale+float64(phase)*w.frequency)
}

func (w *Wave) Draw(d render.Drawer, phase rhythm.BeatPhase) {
	if w.width < 2 {
		return
	}
	x1, y1 := 0.0, w.Y(0, phase)
	for i := 1; i < w.width; i++ {
		x2 := float64(i)
		y2 := w.Y(x2, phase)
		d.Line(x1, y1, x2, y2, waveThickness, w.color)
		x1, y1 = x2, y2
	}
}

func (w *Wave) Name() string {
	return "Wave Effect"
}
