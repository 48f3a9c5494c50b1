package effect

import (
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

// Composite owns an ordered list of effects. Effects are drawn in the order they
// were added, so later effects paint over earlier ones.
type Composite struct {
	effects []Effect
}

// NewComposite creates an empty Composite.
func NewComposite() *Composite {
	return &Composite{
		effects: make([]Effect, 0),
	}
}

// Add appends an effect to the draw order.
func (c *Composite) Add(e Effect) {
	c.effects = append(c.effects, e)
}

// DrawAll draws every effect, in registration order, for the same phase.
func (c *Composite) DrawAll(d render.Drawer, phase rhythm.BeatPhase) {
	for _, e := range c.effects {
		e.Draw(d, phase)
	}
}

// Len returns the number of registered effects.
func (c *Composite) Len() int {
	return len(c.effects)
}

// Names returns the effect names in draw order.
func (c *Composite) Names() []string {
	names := make([]string, 0, len(c.effects))
	for _, e := range c.effects {
		names = append(names, e.Name())
	}
	return names
}
