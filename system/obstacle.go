package system

import (
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/physics"
	"github.com/lixenwraith/hell-escape/vmath"
)

var (
	missileLife     = parameter.MissileLifeMs * time.Millisecond
	missileRetarget = parameter.MissileRetargetMs * time.Millisecond
)

// ObstacleSystem fires cannons, moves projectiles and culls the ones that left the view
type ObstacleSystem struct {
	ctx *engine.GameContext
}

// NewObstacleSystem creates the emitter and projectile system
func NewObstacleSystem(ctx *engine.GameContext) *ObstacleSystem {
	return &ObstacleSystem{ctx: ctx}
}

func (s *ObstacleSystem) Name() string {
	return "obstacle"
}

func (s *ObstacleSystem) Priority() int {
	return parameter.PriorityObstacle
}

func (s *ObstacleSystem) Update(dt time.Duration) {
	ctx := s.ctx
	if ctx.Player == nil {
		return
	}

	scale := engine.FrameScale(dt)
	now := ctx.Clock.Now()
	target := ctx.Player.Hitbox().Center()
	homingLive := liveMissile(ctx.Obstacles)

	// Projectiles spawned this tick start moving on the next one
	n := len(ctx.Obstacles)
	for i := 0; i < n; i++ {
		switch o := ctx.Obstacles[i].(type) {
		case *component.Cannon:
			if !o.LastFire.IsZero() && now.Sub(o.LastFire) <= o.FireRate {
				continue
			}
			o.LastFire = now

			if o.Direction == component.DirHoming {
				// At most one homing missile in the world; the shot is spent either way
				if homingLive {
					continue
				}
				ctx.Obstacles = append(ctx.Obstacles, newMissile(o, target, now))
				homingLive = true
				ctx.PushEvent(event.EventProjectileSpawned, &event.ProjectilePayload{Kind: component.KindHomingMissile})
				continue
			}
			ctx.Obstacles = append(ctx.Obstacles, newBullet(o))
			ctx.PushEvent(event.EventProjectileSpawned, &event.ProjectilePayload{Kind: component.KindBullet})

		case *component.Bullet:
			if o.Dead {
				continue
			}
			o.X += o.VX * scale
			o.Y += o.VY * scale

		case *component.HomingMissile:
			if o.Dead {
				continue
			}
			s.steer(o, target, now, scale)
		}
	}

	s.cull()
	ctx.PruneProjectiles(false)
}

// steer re-aims on the retarget interval, advances and expires a missile
func (s *ObstacleSystem) steer(m *component.HomingMissile, target vmath.Vec, now time.Time, scale float64) {
	if now.Sub(m.LastAim) > missileRetarget {
		m.Aim = physics.LeadPoint(m.Center(), target, parameter.MissileOvershoot)
		m.LastAim = now
	}

	v := physics.Seek(m.Center(), m.Aim, m.Speed)
	m.VX, m.VY = v.X, v.Y
	m.X += m.VX * scale
	m.Y += m.VY * scale

	if now.Sub(m.Spawn) > m.Life || m.Y >= s.ctx.Layout.Bounds.MaxY {
		m.Dead = true
	}
}

// cull kills projectiles beyond the margin around the view
func (s *ObstacleSystem) cull() {
	view := s.ctx.Camera.View()
	m := parameter.ProjectileCullMargin
	for _, o := range s.ctx.Obstacles {
		if !o.Kind().IsProjectile() || !o.Alive() {
			continue
		}
		b := o.Bounds()
		if b.X < view.Left()-m || b.X > view.Right()+m || b.Y < view.Top()-m || b.Y > view.Bottom()+m {
			component.Kill(o)
		}
	}
}

func liveMissile(obs []component.Obstacle) bool {
	for _, o := range obs {
		if m, ok := o.(*component.HomingMissile); ok && !m.Dead {
			return true
		}
	}
	return false
}

func newBullet(c *component.Cannon) *component.Bullet {
	dx, dy := c.Direction.Unit()
	return &component.Bullet{
		Rect:    vmath.CenteredAt(c.Center(), parameter.BulletSize, parameter.BulletSize),
		Kinetic: core.Kinetic{VX: dx * parameter.BulletSpeed, VY: dy * parameter.BulletSpeed},
	}
}

func newMissile(c *component.Cannon, target vmath.Vec, now time.Time) *component.HomingMissile {
	rect := vmath.CenteredAt(c.Center(), parameter.MissileSize, parameter.MissileSize)
	return &component.HomingMissile{
		Rect:    rect,
		Speed:   parameter.MissileSpeed,
		Life:    missileLife,
		Spawn:   now,
		LastAim: now,
		Aim:     physics.LeadPoint(rect.Center(), target, parameter.MissileOvershoot),
	}
}
