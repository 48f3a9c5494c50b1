// Package display puts the render contract on an ebiten window.
package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/robmorgan/pulse/render"
)

// Canvas implements render.Canvas on ebiten images. Bind it to the screen at the
// start of every Draw call.
type Canvas struct {
	screen *ebiten.Image
	stack  []*ebiten.Image
}

var _ render.Canvas = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{}
}

// Bind makes screen the visible surface and drops any pushed targets.
func (c *Canvas) Bind(screen *ebiten.Image) {
	c.screen = screen
	c.stack = c.stack[:0]
}

// Target returns the image currently receiving draw calls.
func (c *Canvas) Target() *ebiten.Image {
	if n := len(c.stack); n > 0 {
		return c.stack[n-1]
	}
	return c.screen
}

// Clear replaces every pixel of the target, alpha included.
func (c *Canvas) Clear(col render.Color) {
	c.Target().Fill(col)
}

func (c *Canvas) FillRect(x, y, width, height float64, col render.Color) {
	vector.DrawFilledRect(c.Target(), float32(x), float32(y), float32(width), float32(height), col, false)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col render.Color) {
	vector.DrawFilledCircle(c.Target(), float32(cx), float32(cy), float32(radius), col, true)
}

func (c *Canvas) Point(x, y float64, col render.Color) {
	vector.DrawFilledRect(c.Target(), float32(x), float32(y), 1, 1, col, false)
}

func (c *Canvas) Line(x1, y1, x2, y2, thickness float64, col render.Color) {
	vector.StrokeLine(c.Target(), float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), col, true)
}

// Blit draws src, which must come from NewTarget, onto the current target.
func (c *Canvas) Blit(src render.Image, opts render.BlitOptions) {
	img, ok := src.(*ebiten.Image)
	if !ok {
		panic(fmt.Sprintf("display: cannot blit %T", src))
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	if opts.FlipY {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(img.Bounds().Dy()))
	}
	op.GeoM.Scale(opts.ScaleX, opts.ScaleY)
	op.GeoM.Translate(opts.X, opts.Y)
	op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	c.Target().DrawImage(img, op)
}

func (c *Canvas) Size() (int, int) {
	b := c.Target().Bounds()
	return b.Dx(), b.Dy()
}

// NewTarget allocates an offscreen image. ebiten panics on allocation failure,
// which is turned into an error here.
func (c *Canvas) NewTarget(width, height int) (img render.Image, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("allocating %dx%d target: %v", width, height, r)
		}
	}()
	target := ebiten.NewImage(width, height)
	target.Fill(color.Black)
	return target, nil
}

func (c *Canvas) PushTarget(target render.Image) {
	img, ok := target.(*ebiten.Image)
	if !ok {
		panic(fmt.Sprintf("display: cannot draw into %T", target))
	}
	c.stack = append(c.stack, img)
}

func (c *Canvas) PopTarget() {
	if len(c.stack) == 0 {
		panic("display: PopTarget without PushTarget")
	}
	c.stack = c.stack[:len(c.stack)-1]
}
