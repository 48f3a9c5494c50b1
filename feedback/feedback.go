// Package feedback implements a ping-pong zoom feedback compositor.
//
// Two offscreen buffers alternate roles every frame. BeginFrame fades the
// destination, draws the previous frame into it slightly enlarged, and redirects
// drawing there; EndFrame restores the visible surface, swaps roles and presents
// the finished buffer. Repeated every frame this leaves a zooming trail behind
// everything drawn in between.
package feedback

import (
	goerrors "errors"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/render"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFrameInProgress is returned by BeginFrame when the previous frame was not ended.
	ErrFrameInProgress = goerrors.New("feedback: BeginFrame called while a frame is in progress")

	// ErrNoFrameInProgress is returned by EndFrame without a matching BeginFrame.
	ErrNoFrameInProgress = goerrors.New("feedback: EndFrame called without BeginFrame")
)

// Params controls how much of the previous frame survives and how fast it zooms.
type Params struct {
	// Opacity is the fraction of the previous frame retained, in [0,1].
	Opacity float64

	// ZoomFactor is the per-frame scale growth, e.g. 0.02 for 2%.
	ZoomFactor float64
}

// FadeAlpha is the alpha of the black clear applied to the destination buffer.
func (p Params) FadeAlpha() float64 {
	return 1 - p.Opacity
}

// Scale is the factor applied to the source buffer when it is composited.
func (p Params) Scale() float64 {
	return 1 + p.ZoomFactor
}

type state int

const (
	stateIdle state = iota
	stateCompositing
)

// Compositor owns two offscreen buffers for the lifetime of the process. No
// other component may draw into them.
type Compositor struct {
	canvas render.Canvas
	params Params
	width  int
	height int

	buffers [2]render.Image
	source  int
	state   state
}

// NewCompositor creates a Compositor whose buffers are width x height. Buffers
// are allocated on the first BeginFrame.
func NewCompositor(canvas render.Canvas, params Params, width, height int) *Compositor {
	return &Compositor{
		canvas: canvas,
		params: params,
		width:  width,
		height: height,
	}
}

func (c *Compositor) Params() Params {
	return c.params
}

// Source returns the index (0 or 1) of the buffer read by the next BeginFrame.
func (c *Compositor) Source() int {
	return c.source
}

// InFrame reports whether BeginFrame has been called without a matching EndFrame.
func (c *Compositor) InFrame() bool {
	return c.state == stateCompositing
}

func (c *Compositor) destination() int {
	return 1 - c.source
}

func (c *Compositor) ensureBuffers() error {
	for i := range c.buffers {
		if c.buffers[i] != nil {
			continue
		}
		img, err := c.canvas.NewTarget(c.width, c.height)
		if err != nil {
			return errors.WithStackTrace(err)
		}
		c.buffers[i] = img

		logger.GetProjectLogger().WithFields(logrus.Fields{
			"buffer": i,
			"width":  c.width,
			"height": c.height,
		}).Debug("Allocated feedback buffer")
	}
	return nil
}

// BeginFrame redirects drawing to the destination buffer and seeds it with a
// faded, enlarged copy of the previous frame. An allocation failure is fatal to
// the render loop.
func (c *Compositor) BeginFrame() error {
	if c.state == stateCompositing {
		return ErrFrameInProgress
	}
	if err := c.ensureBuffers(); err != nil {
		return err
	}

	src := c.buffers[c.source]
	dst := c.buffers[c.destination()]

	c.canvas.PushTarget(dst)
	c.state = stateCompositing

	c.canvas.Clear(render.Black.WithAlpha(c.params.FadeAlpha()))

	w, h := float64(c.width), float64(c.height)
	scale := c.params.Scale()
	c.canvas.Blit(src, render.BlitOptions{
		X:      -w * c.params.ZoomFactor / 2,
		Y:      -h * c.params.ZoomFactor / 2,
		ScaleX: scale,
		ScaleY: scale,
		Alpha:  c.params.Opacity,
	})
	return nil
}

// EndFrame restores the visible surface, swaps the buffer roles and presents the
// finished buffer scaled to fill the surface.
func (c *Compositor) EndFrame() error {
	if c.state != stateCompositing {
		return ErrNoFrameInProgress
	}

	c.canvas.PopTarget()
	c.state = stateIdle
	c.source = c.destination()

	sw, sh := c.canvas.Size()
	c.canvas.Blit(c.buffers[c.source], render.BlitOptions{
		ScaleX: float64(sw) / float64(c.width),
		ScaleY: float64(sh) / float64(c.height),
		Alpha:  1,
	})
	return nil
}
