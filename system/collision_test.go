package system

import (
	"testing"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/vmath"
)

// setBottom moves the player so the hitbox bottom sits at y, with prev bottom at prevY
func setBottom(p *component.Player, x, prevY, y float64) {
	off := parameter.HitboxHeight - parameter.HitboxOffsetY
	p.Prev = vmath.Vec{X: x, Y: prevY - off}
	p.Pos = vmath.Vec{X: x, Y: y - off}
}

func TestPlatformsAreOneWay(t *testing.T) {
	ctx, _ := newContext(t)
	pl := &component.Platform{Rect: vmath.Rect{X: 400, Y: 300, W: 200, H: 20}}
	ctx.Platforms = []*component.Platform{pl}
	ctx.Obstacles = nil
	sys := NewCollisionSystem(ctx)
	p := ctx.Player

	// Rising through from below
	setBottom(p, 450, 364, 354)
	p.VY = -5
	sys.Update(frame)
	if p.Grounded || p.Hitbox().Bottom() != 354 {
		t.Errorf("Expected to pass through from below, got grounded=%v bottom=%v", p.Grounded, p.Hitbox().Bottom())
	}

	// Falling while the feet were already below the top
	setBottom(p, 450, 310, 330)
	p.VY = 5
	sys.Update(frame)
	if p.Grounded || p.Hitbox().Bottom() != 330 {
		t.Errorf("Expected no landing from inside the platform, got grounded=%v bottom=%v", p.Grounded, p.Hitbox().Bottom())
	}

	// Falling onto the top
	setBottom(p, 450, 284, 304)
	p.VY = 10
	sys.Update(frame)
	if !p.Grounded || p.Hitbox().Bottom() != 300 || p.VY != 0 {
		t.Errorf("Expected landing at 300, got grounded=%v bottom=%v vy=%v", p.Grounded, p.Hitbox().Bottom(), p.VY)
	}
}

func TestGoalLandingClears(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	goal := &component.Goal{Rect: vmath.Rect{X: 450, Y: 280, W: 100, H: 20}}
	ctx.Obstacles = []component.Obstacle{goal}
	sys := NewCollisionSystem(ctx)
	p := ctx.Player

	// Rising fast through the goal does not count
	setBottom(p, 460, 300, 290)
	p.VY = -6
	sys.Update(frame)
	if ctx.State.Cleared {
		t.Fatal("Expected no clear while rising")
	}

	setBottom(p, 460, 275, 285)
	p.VX, p.VY = 3, 5
	sys.Update(frame)
	if !ctx.State.Cleared {
		t.Fatal("Expected clear on landing")
	}
	if p.Hitbox().Bottom() != 280 || p.VX != 0 || p.VY != 0 {
		t.Errorf("Expected player at rest on goal, got bottom=%v v=(%v, %v)", p.Hitbox().Bottom(), p.VX, p.VY)
	}
	if n := countEvents(drainEvents(ctx), event.EventStageCleared); n != 1 {
		t.Errorf("Expected 1 clear event, got %d", n)
	}

	sys.Update(frame)
	if n := countEvents(drainEvents(ctx), event.EventStageCleared); n != 0 {
		t.Errorf("Expected clear latched, got %d more events", n)
	}
}

func TestLethalFloorKnocksBack(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	ctx.Obstacles = []component.Obstacle{&component.LethalFloor{Rect: vmath.Rect{X: 0, Y: 600, W: 1280, H: 20}}}
	p := ctx.Player
	setBottom(p, 600, 595, 605)
	p.VX = 4

	NewCollisionSystem(ctx).Update(frame)
	if p.VX != -2 || p.VY != parameter.LethalKnockY || !p.Stunned {
		t.Errorf("Expected knockback (-2, %v) stunned, got (%v, %v) stunned=%v", parameter.LethalKnockY, p.VX, p.VY, p.Stunned)
	}
	types := drainEvents(ctx)
	if countEvents(types, event.EventPlayerHit) != 1 || countEvents(types, event.EventSoundRequest) != 1 {
		t.Errorf("Expected one hit and one sound event, got %v", types)
	}
}

func TestSpringDirections(t *testing.T) {
	cases := []struct {
		dir    component.Direction
		vx, vy float64
	}{
		{component.DirRight, 15, parameter.SpringSideLift},
		{component.DirLeft, -15, parameter.SpringSideLift},
		{component.DirUp, 0, -15},
	}
	for _, tc := range cases {
		ctx, _ := newContext(t)
		ctx.Platforms = nil
		ctx.Obstacles = []component.Obstacle{&component.Spring{Rect: vmath.Rect{X: 550, Y: 590, W: 200, H: 20}, Force: 15, Direction: tc.dir}}
		p := ctx.Player
		setBottom(p, 600, 590, 600)

		NewCollisionSystem(ctx).Update(frame)
		if p.VX != tc.vx || p.VY != tc.vy || !p.Stunned {
			t.Errorf("%v: expected (%v, %v) stunned, got (%v, %v) stunned=%v", tc.dir, tc.vx, tc.vy, p.VX, p.VY, p.Stunned)
		}
	}
}

func TestDownSpringOnlySounds(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	ctx.Obstacles = []component.Obstacle{&component.Spring{Rect: vmath.Rect{X: 550, Y: 590, W: 200, H: 20}, Force: 15, Direction: component.DirDown}}
	p := ctx.Player
	sys := NewCollisionSystem(ctx)

	setBottom(p, 600, 580, 600)
	p.VY = 5
	sys.Update(frame)
	if p.VY != 5 || p.Stunned {
		t.Errorf("Expected no impulse, got vy=%v stunned=%v", p.VY, p.Stunned)
	}
	types := drainEvents(ctx)
	if countEvents(types, event.EventSoundRequest) != 1 || countEvents(types, event.EventPlayerHit) != 0 {
		t.Errorf("Expected one sound and no hit, got %v", types)
	}

	setBottom(p, 600, 600, 605)
	sys.Update(frame)
	if n := countEvents(drainEvents(ctx), event.EventSoundRequest); n != 0 {
		t.Errorf("Expected no repeat sound while overlapping, got %d", n)
	}
}

func TestIceLowersFriction(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	ctx.Obstacles = []component.Obstacle{&component.IceFloor{Rect: vmath.Rect{X: 0, Y: 600, W: 1280, H: 20}}}
	p := ctx.Player
	setBottom(p, 600, 600, 601)

	NewCollisionSystem(ctx).Update(frame)
	if want := parameter.IceFriction(parameter.Friction); p.Friction != want {
		t.Errorf("Expected ice friction %v, got %v", want, p.Friction)
	}
}

func TestProjectileKnockbackKillsProjectile(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	p := ctx.Player
	hb := p.Hitbox()
	b := &component.Bullet{Rect: vmath.CenteredAt(hb.Center(), 10, 10)}
	b.VX = 5
	ctx.Obstacles = []component.Obstacle{b}

	NewCollisionSystem(ctx).Update(frame)
	if p.VX != 10 || p.VY != -5 {
		t.Errorf("Expected knockback (10, -5), got (%v, %v)", p.VX, p.VY)
	}
	if b.Alive() {
		t.Error("Expected bullet killed on contact")
	}
}

func TestWallBlocksSidesAndCeiling(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	wall := &component.Wall{Rect: vmath.Rect{X: 500, Y: 400, W: 40, H: 200}}
	ctx.Obstacles = []component.Obstacle{wall}
	sys := NewCollisionSystem(ctx)
	p := ctx.Player

	p.Prev = vmath.Vec{X: 450, Y: 450}
	p.Pos = vmath.Vec{X: 470, Y: 450}
	p.VX = 5
	sys.Update(frame)
	if p.Hitbox().Right() != 500 || p.VX != 0 {
		t.Errorf("Expected stop at wall left face, got right=%v vx=%v", p.Hitbox().Right(), p.VX)
	}

	ceiling := &component.Wall{Rect: vmath.Rect{X: 400, Y: 300, W: 200, H: 20}}
	ctx.Obstacles = []component.Obstacle{ceiling}
	p.Prev = vmath.Vec{X: 450, Y: 340}
	p.Pos = vmath.Vec{X: 450, Y: 325}
	p.VY = -8
	sys.Update(frame)
	if p.Hitbox().Top() != 320 || p.VY != 0 {
		t.Errorf("Expected head stopped at 320, got top=%v vy=%v", p.Hitbox().Top(), p.VY)
	}
}

func TestScreenWallsBounce(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Platforms = nil
	ctx.Obstacles = nil
	sys := NewCollisionSystem(ctx)
	p := ctx.Player

	p.Pos.X, p.VX = 10, -4
	sys.Update(frame)
	if p.Hitbox().Left() != parameter.ScreenWallMargin || !near(p.VX, 4*parameter.ScreenWallBounce) {
		t.Errorf("Expected bounce off left wall, got left=%v vx=%v", p.Hitbox().Left(), p.VX)
	}

	p.Pos.X, p.VX = 1240, 3
	sys.Update(frame)
	if want := parameter.CanvasWidth - parameter.ScreenWallMargin; p.Hitbox().Right() != want || !near(p.VX, -3*parameter.ScreenWallBounce) {
		t.Errorf("Expected bounce off right wall at %v, got right=%v vx=%v", want, p.Hitbox().Right(), p.VX)
	}
}
