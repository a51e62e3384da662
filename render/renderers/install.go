package renderers

import (
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/render"
)

// Install registers the standard renderer set
func Install(o *render.RenderOrchestrator, ctx *engine.GameContext, tints map[int]core.RGB) {
	o.Register(NewBackgroundRenderer(ctx, tints), render.PriorityBackground)
	o.Register(NewWorldRenderer(ctx), render.PriorityWorld)
	o.Register(NewProjectileRenderer(ctx), render.PriorityProjectile)
	o.Register(NewPlayerRenderer(ctx), render.PriorityPlayer)
	o.Register(NewFrameDebugRenderer(), render.PriorityDebug)
	o.Register(NewPauseOverlay(), render.PriorityOverlay)
}
