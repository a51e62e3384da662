package engine

import (
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/stage"
	"github.com/lixenwraith/hell-escape/vmath"
)

// Camera is the top-left corner of the view in world pixels
// Scrolling is vertical only; X stays at 0
type Camera struct {
	X, Y float64
}

// target places the hitbox top at CameraLeadRatio down the view
func (c *Camera) target(hb vmath.Rect) float64 {
	return hb.Top() - parameter.CanvasHeight*parameter.CameraLeadRatio
}

// Follow eases toward the player over s reference frames, then clamps to bounds
func (c *Camera) Follow(hb vmath.Rect, bounds stage.Bounds, s float64) {
	c.X = 0
	c.Y += (c.target(hb) - c.Y) * vmath.FrameAlpha(parameter.CameraSmoothing, s)
	c.clamp(bounds)
}

// Snap jumps directly to the follow target, used after teleports and restores
func (c *Camera) Snap(hb vmath.Rect, bounds stage.Bounds) {
	c.X = 0
	c.Y = c.target(hb)
	c.clamp(bounds)
}

func (c *Camera) clamp(b stage.Bounds) {
	if c.Y < b.MinY {
		c.Y = b.MinY
	} else if c.Y+parameter.CanvasHeight > b.MaxY {
		c.Y = max(b.MinY, b.MaxY-parameter.CanvasHeight)
	}
}

// View returns the visible world rectangle
func (c *Camera) View() vmath.Rect {
	return vmath.Rect{X: c.X, Y: c.Y, W: parameter.CanvasWidth, H: parameter.CanvasHeight}
}

// Reset returns the camera to the origin
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}
