package effect

import (
	"math"

	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

const (
	spiralSamples   = 500
	spiralStep      = 0.02
	spiralGrowth    = 20.0
	spiralSpin      = 2.0
	spiralThickness = 2.0
)

// Spiral draws an Archimedean spiral that rotates continuously with the phase.
type Spiral struct {
	centerX float64
	centerY float64
	color   render.Color
}

func NewSpiral(centerX, centerY float64, color render.Color) *Spiral {
	return &Spiral{
		centerX: centerX,
		centerY: centerY,
		color:   color,
	}
}

// Point returns the position of sample i (t = i*0.02) for phase.
func (s *Spiral) Point(i int, phase rhythm.BeatPhase) (x, y float64) {
	t := float64(i) * spiralStep
	radius := t * spiralGrowth
	angle := t + float64(phase)*spiralSpin
	return s.centerX + radius*math.Cos(angle), s.centerY + radius*math.Sin(angle)
}

func (s *Spiral) Draw(d render.Drawer, phase rhythm.BeatPhase) {
	x1, y1 := s.Point(0, phase)
	for i := 1; i < spiralSamples; i++ {
		x2, y2 := s.Point(i, phase)
		d.Line(x1, y1, x2, y2, spiralThickness, s.color)
		x1, y1 = x2, y2
	}
}

func (s *Spiral) Name() string {
	return "Spiral Effect"
}
