package effect

import (
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

// PulsingCircle grows a filled circle across each beat and snaps it back to the
// base radius on the next one.
type PulsingCircle struct {
	centerX        float64
	centerY        float64
	baseRadius     float64
	pulseAmplitude float64
	color          render.Color
}

func NewPulsingCircle(centerX, centerY, baseRadius, pulseAmplitude float64, color render.Color) *PulsingCircle {
	return &PulsingCircle{
		centerX:        centerX,
		centerY:        centerY,
		baseRadius:     baseRadius,
		pulseAmplitude: pulseAmplitude,
		color:          color,
	}
}

// Radius returns the circle radius for phase.
func (c *PulsingCircle) Radius(phase rhythm.BeatPhase) float64 {
	return c.baseRadius + phase.Fraction()*c.pulseAmplitude
}

func (c *PulsingCircle) Draw(d render.Drawer, phase rhythm.BeatPhase) {
	d.FillCircle(c.centerX, c.centerY, c.Radius(phase), c.color)
}

func (c *PulsingCircle) Name() string {
	return "Pulsing Circle"
}
