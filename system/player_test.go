package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
)

func groundedPlayer() *component.Player {
	p := component.NewPlayer(600, 0, parameter.Friction)
	p.LandOn(650)
	return p
}

func TestJumpChargeClampsAndReleases(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := groundedPlayer()

	for i := 0; i < 200; i++ {
		if StepPlayer(p, frame, engine.InputState{Jump: true}, tune) {
			t.Fatalf("Expected no jump while held (step %d)", i)
		}
		p.LandOn(650)
	}
	if !p.Charging {
		t.Fatal("Expected charging while jump held on ground")
	}
	if p.JumpCharge != parameter.JumpChargeMax {
		t.Errorf("Expected charge clamped to %v, got %v", parameter.JumpChargeMax, p.JumpCharge)
	}

	if !StepPlayer(p, frame, engine.InputState{}, tune) {
		t.Fatal("Expected jump on release")
	}
	if want := -parameter.JumpChargeMax + parameter.Gravity; p.VY != want {
		t.Errorf("Expected vy %v after release and one gravity step, got %v", want, p.VY)
	}
	if p.Charging || p.JumpCharge != 0 {
		t.Errorf("Expected charge cleared, got charging=%v charge=%v", p.Charging, p.JumpCharge)
	}
}

func TestShortTapUsesMinimumJump(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := groundedPlayer()

	StepPlayer(p, frame, engine.InputState{Jump: true}, tune)
	p.LandOn(650)
	StepPlayer(p, frame, engine.InputState{}, tune)

	if want := -parameter.JumpChargeMin + parameter.Gravity; p.VY != want {
		t.Errorf("Expected minimum jump vy %v, got %v", want, p.VY)
	}
}

func TestChargeCancelledWhenAirborne(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := component.NewPlayer(600, 0, parameter.Friction)
	p.Charging = true
	p.JumpCharge = 10

	if StepPlayer(p, frame, engine.InputState{Jump: true}, tune) {
		t.Error("Expected no jump from an airborne charge")
	}
	if p.Charging || p.JumpCharge != 0 {
		t.Errorf("Expected charge cancelled, got charging=%v charge=%v", p.Charging, p.JumpCharge)
	}
	if p.VY != parameter.Gravity {
		t.Errorf("Expected only gravity applied, got vy %v", p.VY)
	}
}

func TestFallSpeedClampedRiseUnclamped(t *testing.T) {
	tune := parameter.DefaultTuning()

	p := component.NewPlayer(600, 0, parameter.Friction)
	p.VY = 30
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.VY != parameter.TerminalVelocity {
		t.Errorf("Expected fall clamped to %v, got %v", parameter.TerminalVelocity, p.VY)
	}
	if p.Pos.Y != parameter.TerminalVelocity {
		t.Errorf("Expected y advanced by terminal velocity, got %v", p.Pos.Y)
	}

	p = component.NewPlayer(600, 0, parameter.Friction)
	p.VY = -25
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.VY != -24.5 {
		t.Errorf("Expected rising vy -24.5, got %v", p.VY)
	}
}

func TestFrictionResetsEveryTick(t *testing.T) {
	tune := parameter.DefaultTuning()
	ice := parameter.IceFriction(tune.Friction)

	p := groundedPlayer()
	p.VX = 4
	p.Friction = ice
	StepPlayer(p, frame, engine.InputState{}, tune)
	if !near(p.VX, 4*ice) {
		t.Errorf("Expected ice deceleration to %v, got %v", 4*ice, p.VX)
	}
	if p.Friction != tune.Friction {
		t.Errorf("Expected friction reset to %v, got %v", tune.Friction, p.Friction)
	}

	// No ice contact this tick, so the baseline applies
	p.LandOn(650)
	before := p.VX
	StepPlayer(p, frame, engine.InputState{}, tune)
	if !near(p.VX, before*tune.Friction) {
		t.Errorf("Expected baseline deceleration to %v, got %v", before*tune.Friction, p.VX)
	}
}

func TestChargingSlowsHorizontalMovement(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := groundedPlayer()
	p.Charging = true

	StepPlayer(p, frame, engine.InputState{Right: true, Jump: true}, tune)
	if want := tune.Acceleration * tune.ChargingMoveMult; !near(p.VX, want) {
		t.Errorf("Expected vx %v while charging, got %v", want, p.VX)
	}

	p.LandOn(650)
	p.VX = 4
	StepPlayer(p, frame, engine.InputState{Right: true, Jump: true}, tune)
	if want := tune.MaxSpeed * tune.ChargingMoveMult; !near(p.VX, want) {
		t.Errorf("Expected vx pulled to charging limit %v, got %v", want, p.VX)
	}
}

func TestStunIgnoresInputUntilExpired(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := groundedPlayer()
	p.Hit(0, 0)

	StepPlayer(p, frame, engine.InputState{Right: true}, tune)
	if p.VX != 0 {
		t.Errorf("Expected input ignored while stunned, got vx %v", p.VX)
	}

	steps := 1
	for p.Stunned && steps < 100 {
		StepPlayer(p, frame, engine.InputState{}, tune)
		steps++
	}
	if elapsed := time.Duration(steps) * frame; elapsed < time.Duration(parameter.HitStunMs)*time.Millisecond {
		t.Errorf("Expected stun to last %vms, ended after %v", parameter.HitStunMs, elapsed)
	}

	StepPlayer(p, frame, engine.InputState{Right: true}, tune)
	if p.VX <= 0 {
		t.Errorf("Expected input after stun, got vx %v", p.VX)
	}
	if !p.FacingRight {
		t.Error("Expected facing right")
	}
}

func TestAnimationStates(t *testing.T) {
	tune := parameter.DefaultTuning()

	p := groundedPlayer()
	p.VX = 2
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.Anim.State != component.AnimRun || p.Anim.Frame != parameter.AnimRunStart {
		t.Errorf("Expected RUN frame %d, got %v frame %d", parameter.AnimRunStart, p.Anim.State, p.Anim.Frame)
	}

	p = component.NewPlayer(600, 0, parameter.Friction)
	p.VY = -10
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.Anim.State != component.AnimJump || p.Anim.Frame != parameter.AnimJumpStart {
		t.Errorf("Expected JUMP frame %d, got %v frame %d", parameter.AnimJumpStart, p.Anim.State, p.Anim.Frame)
	}

	p = component.NewPlayer(600, 0, parameter.Friction)
	p.VY = 15
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.Anim.State != component.AnimFall || p.Anim.Frame != parameter.AnimFallStart+2 {
		t.Errorf("Expected FALL frame %d, got %v frame %d", parameter.AnimFallStart+2, p.Anim.State, p.Anim.Frame)
	}

	p = groundedPlayer()
	p.Hit(1, 1)
	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.Anim.State != component.AnimHit {
		t.Errorf("Expected HIT while stunned, got %v", p.Anim.State)
	}
}

func TestIdleAnimationCycles(t *testing.T) {
	tune := parameter.DefaultTuning()
	p := groundedPlayer()

	for i := 0; i < 5; i++ {
		StepPlayer(p, frame, engine.InputState{}, tune)
		p.LandOn(650)
	}
	if p.Anim.State != component.AnimIdle || p.Anim.Frame != 0 {
		t.Fatalf("Expected IDLE frame 0 before 100ms, got %v frame %d", p.Anim.State, p.Anim.Frame)
	}

	StepPlayer(p, frame, engine.InputState{}, tune)
	if p.Anim.Frame != 1 {
		t.Errorf("Expected IDLE frame 1 after 100ms, got %d", p.Anim.Frame)
	}
}
