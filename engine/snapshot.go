package engine

import "github.com/lixenwraith/hell-escape/component"

// Snapshot is an immutable copy of the observable state, published once per tick
// Readers on other goroutines (debug server) use it instead of touching the context
type Snapshot struct {
	Frame     int64  `json:"frame"`
	Stage     int    `json:"stage"`
	StageName string `json:"stageName"`
	Stages    int    `json:"stages"`

	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Grounded  bool    `json:"grounded"`
	Stunned   bool    `json:"stunned"`
	Charge    float64 `json:"charge"`
	Anim      string  `json:"anim"`
	AnimFrame int     `json:"animFrame"`

	CameraY     float64 `json:"cameraY"`
	Projectiles int     `json:"projectiles"`

	Running     bool  `json:"running"`
	Paused      bool  `json:"paused"`
	Cleared     bool  `json:"cleared"`
	ClearTimeMs int64 `json:"clearTimeMs"`
	ElapsedMs   int64 `json:"elapsedMs"`
}

func (g *Game) buildSnapshot() *Snapshot {
	ctx := g.ctx
	s := &Snapshot{
		Frame:       ctx.Frame,
		Stage:       ctx.State.CurrentStage,
		StageName:   ctx.StageName(ctx.State.CurrentStage),
		CameraY:     ctx.Camera.Y,
		Running:     ctx.State.Running,
		Paused:      ctx.State.Paused(),
		Cleared:     ctx.State.Cleared,
		ClearTimeMs: ctx.State.ClearTime.Milliseconds(),
	}
	if ctx.Layout != nil {
		s.Stages = ctx.Layout.Count()
	}
	if ctx.State.Running {
		s.ElapsedMs = ctx.Clock.Elapsed().Milliseconds()
	}
	s.Projectiles = projectileCount(ctx.Obstacles)
	if p := ctx.Player; p != nil {
		s.X, s.Y = p.Pos.X, p.Pos.Y
		s.VX, s.VY = p.VX, p.VY
		s.Grounded = p.Grounded
		s.Stunned = p.Stunned
		s.Charge = p.JumpCharge
		s.Anim = p.Anim.State.String()
		s.AnimFrame = p.Anim.Frame
	}
	return s
}

// projectileCount counts live projectiles
func projectileCount(obs []component.Obstacle) int {
	n := 0
	for _, o := range obs {
		if o.Kind().IsProjectile() && o.Alive() {
			n++
		}
	}
	return n
}
