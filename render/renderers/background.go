package renderers

import (
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter/visual"
	"github.com/lixenwraith/hell-escape/render"
)

// BackgroundRenderer paints a vertical gradient over the world height,
// tinted per stage by the average color of that stage's background image
type BackgroundRenderer struct {
	gameCtx *engine.GameContext
	tints   map[int]core.RGB // 1-based stage to tint; stages without an image are untinted
}

// NewBackgroundRenderer creates the background layer
func NewBackgroundRenderer(ctx *engine.GameContext, tints map[int]core.RGB) *BackgroundRenderer {
	return &BackgroundRenderer{gameCtx: ctx, tints: tints}
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	layout := ctx.Game.Layout
	if layout == nil {
		return
	}
	w, h := buf.Size()
	bounds := layout.Bounds
	span := max(1, bounds.MaxY-bounds.MinY)
	sy := ctx.View.ScaleY()
	if sy <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		worldY := ctx.View.CameraY + (float64(y)+0.5)/sy
		t := min(1, max(0, (bounds.MaxY-worldY)/span))
		c := render.Lerp(visual.RgbSkyBottom, visual.RgbSkyTop, t)
		if tint, ok := r.tintAt(worldY); ok {
			c = c.Blend(tint, visual.BackgroundTintAlpha)
		}
		buf.FillRect(0, y, w, y+1, c, 1)
	}
}

// tintAt returns the tint of the stage whose range contains y, nearest stage otherwise
func (r *BackgroundRenderer) tintAt(y float64) (core.RGB, bool) {
	if len(r.tints) == 0 {
		return core.RGB{}, false
	}
	stages := r.gameCtx.Layout.Stages
	best, bestDist := 0, 0.0
	for i := range stages {
		rg := stages[i].Range
		var d float64
		switch {
		case y < rg.MinY:
			d = rg.MinY - y
		case y > rg.MaxY:
			d = y - rg.MaxY
		}
		if best == 0 || d < bestDist {
			best, bestDist = stages[i].Index, d
		}
	}
	c, ok := r.tints[best]
	return c, ok
}
