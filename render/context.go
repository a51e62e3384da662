package render

import (
	"math"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/vmath"
)

// Viewport maps the camera's world rectangle onto buffer pixels
// The axes scale independently so the full view always fills the buffer
type Viewport struct {
	CameraY float64
	Width   int // Pixels
	Height  int // Pixels
}

// ScaleX returns pixels per world unit horizontally
func (v Viewport) ScaleX() float64 { return float64(v.Width) / parameter.CanvasWidth }

// ScaleY returns pixels per world unit vertically
func (v Viewport) ScaleY() float64 { return float64(v.Height) / parameter.CanvasHeight }

// ToPixels returns the pixel span [x0, x1) x [y0, y1) covered by r
// Non-empty rectangles cover at least one pixel on each axis
func (v Viewport) ToPixels(r vmath.Rect) (x0, y0, x1, y1 int) {
	sx, sy := v.ScaleX(), v.ScaleY()
	x0 = int(math.Floor(r.Left() * sx))
	x1 = int(math.Ceil(r.Right() * sx))
	y0 = int(math.Floor((r.Top() - v.CameraY) * sy))
	y1 = int(math.Ceil((r.Bottom() - v.CameraY) * sy))
	if r.W > 0 {
		x1 = max(x1, x0+1)
	}
	if r.H > 0 {
		y1 = max(y1, y0+1)
	}
	return
}

// ToCell returns the cell containing a world point
func (v Viewport) ToCell(p vmath.Vec) (col, row int) {
	x := int(math.Floor(p.X * v.ScaleX()))
	y := int(math.Floor((p.Y - v.CameraY) * v.ScaleY()))
	return x, y / 2
}

// Visible reports whether r intersects the view
func (v Viewport) Visible(r vmath.Rect) bool {
	return r.Bottom() > v.CameraY && r.Top() < v.CameraY+parameter.CanvasHeight &&
		r.Right() > 0 && r.Left() < parameter.CanvasWidth
}

// RenderContext is the per-frame input to every renderer, built on the loop goroutine
type RenderContext struct {
	Game  *engine.GameContext
	View  Viewport
	Frame int64
}

// NewRenderContext captures the camera for a buffer of the given pixel size
func NewRenderContext(ctx *engine.GameContext, w, h int) RenderContext {
	return RenderContext{
		Game:  ctx,
		View:  Viewport{CameraY: ctx.Camera.Y, Width: w, Height: h},
		Frame: ctx.Frame,
	}
}
