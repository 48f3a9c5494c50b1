package scene

import (
	"github.com/robmorgan/pulse/effect"
	"github.com/robmorgan/pulse/feedback"
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
)

// Renderer draws one frame of a composite per call. With feedback enabled the
// effects land in the compositor's destination buffer; otherwise the surface is
// cleared to black and the effects are drawn directly.
type Renderer struct {
	composite  *effect.Composite
	compositor *feedback.Compositor
	feedbackOn bool
}

// NewRenderer creates a Renderer. compositor may be nil, in which case feedback
// can never be enabled.
func NewRenderer(composite *effect.Composite, compositor *feedback.Compositor, feedbackOn bool) *Renderer {
	return &Renderer{
		composite:  composite,
		compositor: compositor,
		feedbackOn: feedbackOn && compositor != nil,
	}
}

// FeedbackEnabled reports whether frames go through the compositor.
func (r *Renderer) FeedbackEnabled() bool {
	return r.feedbackOn
}

// ToggleFeedback flips feedback on or off and returns the new state. Call it
// between frames only.
func (r *Renderer) ToggleFeedback() bool {
	if r.compositor != nil {
		r.feedbackOn = !r.feedbackOn
	}
	return r.feedbackOn
}

// Render draws every effect at phase. overlay, if set, runs after the effects
// and before the frame is presented, so it takes part in the feedback trail.
func (r *Renderer) Render(d render.Drawer, phase rhythm.BeatPhase, overlay func(render.Drawer)) error {
	if r.feedbackOn {
		if err := r.compositor.BeginFrame(); err != nil {
			return err
		}
	} else {
		d.Clear(render.Black)
	}

	r.composite.DrawAll(d, phase)
	if overlay != nil {
		overlay(d)
	}

	if r.feedbackOn {
		return r.compositor.EndFrame()
	}
	return nil
}
