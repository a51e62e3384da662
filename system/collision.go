package system

import (
	"math"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/parameter"
)

// CollisionSystem resolves player contact with platforms, screen edges and obstacles
// Order: platform landing, goal resting, screen walls, typed obstacles
type CollisionSystem struct {
	ctx *engine.GameContext
}

// NewCollisionSystem creates the collision resolver
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(_ time.Duration) {
	p := s.ctx.Player
	if p == nil {
		return
	}
	s.landPlatforms(p)
	s.restOnGoals(p)
	s.screenWalls(p)
	s.obstacles(p)
}

// landPlatforms lands a falling player whose feet crossed a platform top this tick
// Platforms are one-way: rising through from below never collides
func (s *CollisionSystem) landPlatforms(p *component.Player) {
	if p.VY < 0 {
		return
	}
	for _, pl := range s.ctx.Platforms {
		if p.Hitbox().Overlaps(pl.Rect) && p.PrevHitbox().Bottom() <= pl.Top() {
			p.LandOn(pl.Top())
		}
	}
}

// restOnGoals keeps a player standing on a goal instead of sinking through it
func (s *CollisionSystem) restOnGoals(p *component.Player) {
	for _, o := range s.ctx.Obstacles {
		g, ok := o.(*component.Goal)
		if !ok {
			continue
		}
		hb := p.Hitbox()
		if !g.SpansX(hb.CenterX()) || p.VY < 0 {
			continue
		}
		if p.PrevHitbox().Bottom() <= g.Top() && g.Top() <= hb.Bottom()+parameter.GoalTouchEpsilon {
			p.LandOn(g.Top())
			p.VX = 0
		}
	}
}

// screenWalls bounces the player off invisible walls inside the view edges
func (s *CollisionSystem) screenWalls(p *component.Player) {
	view := s.ctx.Camera.View()
	left := view.Left() + parameter.ScreenWallMargin
	right := view.Right() - parameter.ScreenWallMargin
	hb := p.Hitbox()

	switch {
	case hb.Left() < left:
		p.Pos.X += left - hb.Left()
		p.VX = math.Abs(p.VX) * parameter.ScreenWallBounce
		s.ctx.PlaySound(parameter.SoundHit)
	case hb.Right() > right:
		p.Pos.X -= hb.Right() - right
		p.VX = -math.Abs(p.VX) * parameter.ScreenWallBounce
		s.ctx.PlaySound(parameter.SoundHit)
	}
}

func (s *CollisionSystem) obstacles(p *component.Player) {
	ctx := s.ctx
	for _, o := range ctx.Obstacles {
		if !o.Alive() || !s.touching(p, o) {
			continue
		}

		switch o := o.(type) {
		case *component.Wall:
			s.resolveWall(p, o)

		case *component.LethalFloor:
			p.Hit(p.VX*parameter.LethalKnockXMult, parameter.LethalKnockY)
			s.hit(component.KindLethalFloor)

		case *component.IceFloor:
			p.Friction = parameter.IceFriction(ctx.Tuning.Friction)

		case *component.Spring:
			switch o.Direction {
			case component.DirRight:
				p.Hit(o.Force, parameter.SpringSideLift)
			case component.DirLeft:
				p.Hit(-o.Force, parameter.SpringSideLift)
			case component.DirDown:
				// No impulse; the sound marks the first contact only
				if !p.PrevHitbox().Overlaps(o.Rect) {
					ctx.PlaySound(parameter.SoundSpring)
				}
				continue
			default:
				p.Hit(0, -o.Force)
			}
			ctx.PlaySound(parameter.SoundSpring)
			ctx.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{Source: component.KindSpring})

		case *component.Goal:
			if p.VY >= parameter.GoalMinVY && p.PrevHitbox().Bottom() <= o.Top()+parameter.GoalLandTolerance {
				p.LandOn(o.Top())
				p.VX = 0
				ctx.ClearStage()
			}

		case *component.Bullet, *component.HomingMissile:
			vx, vy := component.Velocity(o)
			p.Hit(vx*parameter.ProjectileKnockMult, vy*parameter.ProjectileKnockMult+parameter.ProjectileKnockLift)
			component.Kill(o)
			s.hit(o.Kind())

		case *component.Teleporter:
			ctx.RequestTeleport(o.TargetStage)
		}
	}
}

// touching reports overlap, or for goals a resting contact within the touch epsilon
func (s *CollisionSystem) touching(p *component.Player, o component.Obstacle) bool {
	hb, b := p.Hitbox(), o.Bounds()
	if hb.Overlaps(b) {
		return true
	}
	if o.Kind() != component.KindGoal {
		return false
	}
	return hb.OverlapsX(b) && math.Abs(hb.Bottom()-b.Top()) <= parameter.GoalTouchEpsilon
}

// resolveWall pushes the player out along the side it came from
func (s *CollisionSystem) resolveWall(p *component.Player, w *component.Wall) {
	prev := p.PrevHitbox()

	switch {
	case prev.Right() <= w.Left():
		p.Pos.X = w.Left() - parameter.HitboxWidth - parameter.HitboxOffsetX
		p.VX = 0
	case prev.Left() >= w.Right():
		p.Pos.X = w.Right() - parameter.HitboxOffsetX
		p.VX = 0
	}

	switch {
	case prev.Bottom() <= w.Top() && p.VY >= 0:
		p.LandOn(w.Top())
	case prev.Top() >= w.Bottom() && p.VY < 0:
		p.Pos.Y = w.Bottom() + parameter.HitboxOffsetY
		p.VY = 0
	}
}

func (s *CollisionSystem) hit(source component.Kind) {
	s.ctx.PlaySound(parameter.SoundHit)
	s.ctx.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{Source: source})
}
