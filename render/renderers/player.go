package renderers

import (
	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter/visual"
	"github.com/lixenwraith/hell-escape/render"
	"github.com/lixenwraith/hell-escape/vmath"
)

// PlayerRenderer draws the player body, a facing marker and the jump charge bar
type PlayerRenderer struct {
	gameCtx *engine.GameContext
}

func NewPlayerRenderer(ctx *engine.GameContext) *PlayerRenderer {
	return &PlayerRenderer{gameCtx: ctx}
}

func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Game.Player
	if p == nil {
		return
	}
	hb := p.Hitbox()
	x0, y0, x1, y1 := ctx.View.ToPixels(hb)
	buf.FillRect(x0, y0, x1, y1, AnimColor(p.Anim.State), visual.PlayerSpriteFill)

	// Eye on the facing side, a quarter down the body
	eyeY := y0 + max(0, (y1-y0)/4)
	if p.FacingRight {
		buf.Set(x1-1, eyeY, visual.RgbPlayerFacing)
	} else {
		buf.Set(x0, eyeY, visual.RgbPlayerFacing)
	}

	if p.Charging && p.JumpCharge > 0 {
		r.chargeBar(ctx, buf, hb, p.JumpCharge/ctx.Game.Tuning.JumpChargeMax)
	}
}

// chargeBar fills left to right above the head, shifting toward the high color as it fills
func (r *PlayerRenderer) chargeBar(ctx render.RenderContext, buf *render.RenderBuffer, hb vmath.Rect, frac float64) {
	frac = min(1, max(0, frac))
	x0, y0, x1, _ := ctx.View.ToPixels(hb)
	y := y0 - 2
	filled := x0 + int(float64(x1-x0)*frac+0.5)
	buf.FillRect(x0, y, filled, y+1, render.Lerp(visual.RgbChargeLow, visual.RgbChargeHigh, frac), 1)
}

// AnimColor maps the animation state to a body color
func AnimColor(s component.AnimState) core.RGB {
	switch s {
	case component.AnimRun:
		return visual.RgbPlayerRun
	case component.AnimJump, component.AnimFall:
		return visual.RgbPlayerAir
	case component.AnimHit:
		return visual.RgbPlayerHit
	}
	return visual.RgbPlayer
}
