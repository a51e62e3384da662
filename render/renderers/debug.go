package renderers

import (
	"fmt"

	"github.com/lixenwraith/hell-escape/parameter/visual"
	"github.com/lixenwraith/hell-escape/render"
)

// FrameDebugRenderer outlines hitboxes and prints the animation frame
// Toggled at runtime through GameState.ShowFrameDebug
type FrameDebugRenderer struct{}

func NewFrameDebugRenderer() *FrameDebugRenderer {
	return &FrameDebugRenderer{}
}

func (r *FrameDebugRenderer) ShouldRender(ctx render.RenderContext) bool {
	return ctx.Game.State.ShowFrameDebug
}

func (r *FrameDebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Game.Player
	if p == nil {
		return
	}

	x0, y0, x1, y1 := ctx.View.ToPixels(p.Hitbox())
	buf.StrokeRect(x0, y0, x1, y1, visual.RgbDebugHitbox)
	for _, o := range ctx.Game.Obstacles {
		if o.Alive() && ctx.View.Visible(o.Bounds()) {
			x0, y0, x1, y1 := ctx.View.ToPixels(o.Bounds())
			buf.StrokeRect(x0, y0, x1, y1, visual.RgbDebugHitbox)
		}
	}

	lines := []string{
		fmt.Sprintf("%s %d", p.Anim.State, p.Anim.Frame),
		fmt.Sprintf("x %.0f y %.0f", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("vx %.1f vy %.1f", p.VX, p.VY),
		fmt.Sprintf("f %d", ctx.Frame),
	}
	for i, l := range lines {
		buf.Text(0, i, l, visual.RgbDebugText)
	}
}

// PauseOverlay dims the frame while paused or before the run starts
type PauseOverlay struct{}

func NewPauseOverlay() *PauseOverlay {
	return &PauseOverlay{}
}

func (r *PauseOverlay) ShouldRender(ctx render.RenderContext) bool {
	st := &ctx.Game.State
	return !st.Running || st.Paused()
}

func (r *PauseOverlay) Render(_ render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Size()
	buf.FillRect(0, 0, w, h, visual.RgbOverlayDim, visual.OverlayDimAlpha)
}
