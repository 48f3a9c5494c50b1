// Package render defines the minimal 2D drawing contract shared by effects and the
// feedback compositor. Implementations draw to whichever target is currently
// active: the visible surface, or an offscreen image pushed with PushTarget.
package render

import "image"

// Image is an offscreen color target owned by a Canvas implementation.
type Image interface {
	Bounds() image.Rectangle
}

// BlitOptions controls how an Image is drawn onto the active target. The source
// is scaled by ScaleX/ScaleY about its top-left corner, then translated to X,Y.
type BlitOptions struct {
	X, Y           float64
	ScaleX, ScaleY float64

	// Alpha multiplies the source pixels.
	Alpha float64

	// FlipY mirrors the source vertically before scaling.
	FlipY bool
}

// Drawer is the primitive set every effect depends on.
type Drawer interface {
	// Clear replaces every pixel of the active target with c, alpha included.
	Clear(c Color)
	FillRect(x, y, width, height float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	Point(x, y float64, c Color)
	Line(x1, y1, x2, y2, thickness float64, c Color)
	Blit(src Image, opts BlitOptions)

	// Size returns the dimensions of the active target.
	Size() (width, height int)
}

// Targeter manages which target receives draw calls.
type Targeter interface {
	// NewTarget allocates an offscreen image.
	NewTarget(width, height int) (Image, error)

	// PushTarget redirects drawing to img until the matching PopTarget.
	PushTarget(img Image)
	PopTarget()
}

// Canvas is a Drawer with render-target management.
type Canvas interface {
	Drawer
	Targeter
}
