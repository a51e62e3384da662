package renderers

import (
	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter/visual"
	"github.com/lixenwraith/hell-escape/render"
)

// WorldRenderer draws platforms and static obstacles
type WorldRenderer struct {
	gameCtx *engine.GameContext
}

func NewWorldRenderer(ctx *engine.GameContext) *WorldRenderer {
	return &WorldRenderer{gameCtx: ctx}
}

func (r *WorldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.Game.Platforms {
		if !ctx.View.Visible(p.Rect) {
			continue
		}
		x0, y0, x1, y1 := ctx.View.ToPixels(p.Rect)
		buf.FillRect(x0, y0, x1, y1, visual.RgbPlatform, 1)
		buf.FillRect(x0, y0, x1, y0+1, visual.RgbPlatformTop, 1)
	}

	for _, o := range ctx.Game.Obstacles {
		if o.Kind().IsProjectile() || !ctx.View.Visible(o.Bounds()) {
			continue
		}
		drawObstacle(ctx, buf, o)
	}
}

// ProjectileRenderer draws live bullets and missiles above the world
type ProjectileRenderer struct {
	gameCtx *engine.GameContext
}

func NewProjectileRenderer(ctx *engine.GameContext) *ProjectileRenderer {
	return &ProjectileRenderer{gameCtx: ctx}
}

func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, o := range ctx.Game.Obstacles {
		if !o.Kind().IsProjectile() || !o.Alive() || !ctx.View.Visible(o.Bounds()) {
			continue
		}
		drawObstacle(ctx, buf, o)
	}
}

func drawObstacle(ctx render.RenderContext, buf *render.RenderBuffer, o component.Obstacle) {
	b := o.Bounds()
	c := KindColor(o)
	x0, y0, x1, y1 := ctx.View.ToPixels(b)
	buf.FillRect(x0, y0, x1, y1, c, 1)

	if g := KindGlyph(o); g != 0 {
		col, row := ctx.View.ToCell(b.Center())
		buf.SetGlyph(col, row, g, visual.RgbWhite)
	}
}

// KindColor returns the fill color of an obstacle
func KindColor(o component.Obstacle) core.RGB {
	switch o.Kind() {
	case component.KindLethalFloor:
		return visual.RgbLethal
	case component.KindIceFloor:
		return visual.RgbIce
	case component.KindSpring:
		return visual.RgbSpring
	case component.KindWall:
		return visual.RgbWall
	case component.KindCannon:
		return visual.RgbCannon
	case component.KindBullet:
		return visual.RgbBullet
	case component.KindHomingMissile:
		return visual.RgbMissile
	case component.KindTeleporter:
		return visual.RgbTeleporter
	case component.KindGoal:
		return visual.RgbGoal
	}
	return visual.RgbPlatform
}

// KindGlyph returns the marker drawn at an obstacle's center, 0 for none
func KindGlyph(o component.Obstacle) rune {
	switch o := o.(type) {
	case *component.Spring:
		switch o.Direction {
		case component.DirLeft:
			return visual.SpringLeftChar
		case component.DirRight:
			return visual.SpringRightChar
		}
		return visual.SpringUpChar
	case *component.Cannon:
		if o.Direction == component.DirHoming {
			return visual.HomingChar
		}
		return visual.CannonChar
	case *component.Teleporter:
		return visual.TeleporterChar
	case *component.Goal:
		return visual.GoalChar
	case *component.LethalFloor:
		return visual.LethalChar
	case *component.Bullet:
		return visual.BulletChar
	case *component.HomingMissile:
		return visual.MissileChar
	}
	return 0
}
