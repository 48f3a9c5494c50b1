// Package rendertest provides a render.Canvas that records draw calls instead of
// producing pixels.
package rendertest

import (
	"fmt"
	"image"

	"github.com/robmorgan/pulse/render"
)

// Op names a recorded primitive.
type Op string

const (
	OpClear      Op = "clear"
	OpFillRect   Op = "fill_rect"
	OpFillCircle Op = "fill_circle"
	OpPoint      Op = "point"
	OpLine       Op = "line"
	OpBlit       Op = "blit"
)

// Call is one recorded primitive. Args holds the numeric arguments in the order
// the Drawer method takes them.
type Call struct {
	Op     Op
	Target render.Image
	Args   []float64
	Color  render.Color
	Source render.Image
	Blit   render.BlitOptions
}

// Image is an offscreen target handed out by Recorder.NewTarget.
type Image struct {
	ID     int
	Width  int
	Height int
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.Width, i.Height)
}

// Recorder implements render.Canvas. The zero value is not usable; use New.
type Recorder struct {
	Screen *Image
	Calls  []Call

	// Allocated lists every target created by NewTarget.
	Allocated []*Image

	// FailAlloc makes NewTarget return an error.
	FailAlloc bool

	stack []render.Image
}

var _ render.Canvas = (*Recorder)(nil)

// New returns a Recorder whose visible surface is width x height.
func New(width, height int) *Recorder {
	return &Recorder{Screen: &Image{ID: -1, Width: width, Height: height}}
}

// Target returns the image currently receiving draw calls.
func (r *Recorder) Target() render.Image {
	if len(r.stack) == 0 {
		return r.Screen
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many targets are pushed.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Filter returns the recorded calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) record(c Call) {
	c.Target = r.Target()
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Clear(c render.Color) {
	r.record(Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, width, height float64, c render.Color) {
	r.record(Call{Op: OpFillRect, Args: []float64{x, y, width, height}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c render.Color) {
	r.record(Call{Op: OpFillCircle, Args: []float64{cx, cy, radius}, Color: c})
}

func (r *Recorder) Point(x, y float64, c render.Color) {
	r.record(Call{Op: OpPoint, Args: []float64{x, y}, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, thickness float64, c render.Color) {
	r.record(Call{Op: OpLine, Args: []float64{x1, y1, x2, y2, thickness}, Color: c})
}

func (r *Recorder) Blit(src render.Image, opts render.BlitOptions) {
	r.record(Call{Op: OpBlit, Source: src, Blit: opts})
}

func (r *Recorder) Size() (int, int) {
	b := r.Target().Bounds()
	return b.Dx(), b.Dy()
}

func (r *Recorder) NewTarget(width, height int) (render.Image, error) {
	if r.FailAlloc {
		return nil, fmt.Errorf("cannot allocate %dx%d target", width, height)
	}
	img := &Image{ID: len(r.Allocated), Width: width, Height: height}
	r.Allocated = append(r.Allocated, img)
	return img, nil
}

func (r *Recorder) PushTarget(img render.Image) {
	r.stack = append(r.stack, img)
}

func (r *Recorder) PopTarget() {
	if len(r.stack) == 0 {
		panic("rendertest: PopTarget without matching PushTarget")
	}
	r.stack = r.stack[:len(r.stack)-1]
}
