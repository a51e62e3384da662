package system

import (
	"math"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/physics"
)

// PlayerSystem applies input, jump charge, gravity and animation to the player
type PlayerSystem struct {
	ctx *engine.GameContext
}

// NewPlayerSystem creates the player movement system
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update(dt time.Duration) {
	p := s.ctx.Player
	if p == nil {
		return
	}
	if StepPlayer(p, dt, s.ctx.Input, s.ctx.Tuning) {
		s.ctx.PlaySound(parameter.SoundJump)
	}
}

// StepPlayer advances the player by dt and reports whether a jump was released
// Ground contact and friction are re-established by the collision pass that follows
func StepPlayer(p *component.Player, dt time.Duration, in engine.InputState, t parameter.Tuning) (jumped bool) {
	p.Prev = p.Pos
	s := engine.FrameScale(dt)
	grounded := p.Grounded

	if p.Stunned {
		p.HitTimer -= dt
		if p.HitTimer <= 0 {
			p.Stunned = false
			p.HitTimer = 0
		}
	}

	// Charge only accumulates on the ground
	if p.Charging && !grounded {
		p.CancelCharge()
	}

	if !p.Stunned {
		jumped = applyInput(p, in, t, s, grounded)
	}

	animGrounded := p.Grounded
	p.Friction = t.Friction
	p.Grounded = false

	physics.Integrate(&p.Kinetic, &p.Pos, t.Gravity, t.TerminalVelocity, s)
	animate(p, dt, animGrounded)
	return jumped
}

func applyInput(p *component.Player, in engine.InputState, t parameter.Tuning, s float64, grounded bool) bool {
	accel, limit := t.AccelerationAir, t.MaxSpeedAir
	if grounded {
		accel, limit = t.Acceleration, t.MaxSpeed
	}
	if p.Charging {
		accel *= t.ChargingMoveMult
		limit *= t.ChargingMoveMult
	}

	switch {
	case in.Left:
		p.VX = physics.Accelerate(p.VX, -1, accel, limit, s)
		p.FacingRight = false
	case in.Right:
		p.VX = physics.Accelerate(p.VX, 1, accel, limit, s)
		p.FacingRight = true
	default:
		factor := t.AirResistance
		if grounded {
			factor = p.Friction
		}
		p.VX = physics.Decay(p.VX, factor, parameter.VelocityEpsilon, s)
	}

	if in.Jump && grounded {
		p.Charging = true
		p.JumpCharge = math.Min(p.JumpCharge+t.JumpChargeRate*s, t.JumpChargeMax)
	}

	if !in.Jump && p.Charging {
		p.VY = -math.Max(p.JumpCharge, t.JumpChargeMin)
		p.CancelCharge()
		p.Grounded = false
		return true
	}
	return false
}

var (
	animIdleStep = time.Duration(parameter.AnimIdleMs * float64(time.Millisecond))
	animRunStep  = time.Duration(parameter.AnimRunMs * float64(time.Millisecond))
	animHitStep  = time.Duration(parameter.AnimHitMs * float64(time.Millisecond))
)

// animate derives the animation state and advances its frame
func animate(p *component.Player, dt time.Duration, grounded bool) {
	a := &p.Anim
	a.Timer += dt

	state := component.AnimIdle
	switch {
	case p.Stunned:
		state = component.AnimHit
	case p.Charging:
		state = component.AnimIdle
	case !grounded:
		if p.VY < parameter.AnimRiseThreshold {
			state = component.AnimJump
		} else {
			state = component.AnimFall
		}
	case math.Abs(p.VX) > parameter.AnimRunThreshold:
		state = component.AnimRun
	}

	if state != a.State {
		a.State = state
		a.Timer = 0
		a.Frame = startFrame(state)
	}

	switch a.State {
	case component.AnimIdle:
		cycle(a, animIdleStep, parameter.AnimIdleStart, parameter.AnimIdleEnd)
	case component.AnimRun:
		cycle(a, animRunStep, parameter.AnimRunStart, parameter.AnimRunEnd)
	case component.AnimHit:
		cycle(a, animHitStep, parameter.AnimHitStart, parameter.AnimHitEnd)
	case component.AnimJump:
		switch {
		case p.VY < -8:
			a.Frame = parameter.AnimJumpStart
		case p.VY < -4:
			a.Frame = parameter.AnimJumpStart + 1
		case p.VY < -1:
			a.Frame = parameter.AnimJumpStart + 2
		default:
			a.Frame = parameter.AnimJumpStart + 3
		}
	case component.AnimFall:
		switch {
		case p.VY > 12:
			a.Frame = parameter.AnimFallStart + 2
		case p.VY > 5:
			a.Frame = parameter.AnimFallStart + 1
		default:
			a.Frame = parameter.AnimFallStart
		}
	}
}

// cycle steps a looping frame range once the timer passes step
func cycle(a *component.Animation, step time.Duration, first, last int) {
	if a.Frame < first || a.Frame > last {
		a.Frame = first
	}
	if a.Timer <= step {
		return
	}
	a.Timer = 0
	a.Frame++
	if a.Frame > last {
		a.Frame = first
	}
}

func startFrame(s component.AnimState) int {
	switch s {
	case component.AnimRun:
		return parameter.AnimRunStart
	case component.AnimHit:
		return parameter.AnimHitStart
	case component.AnimJump:
		return parameter.AnimJumpStart
	case component.AnimFall:
		return parameter.AnimFallStart
	}
	return parameter.AnimIdleStart
}
