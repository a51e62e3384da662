package physics

import (
	"testing"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/vmath"
)

func TestIntegrateClampsFallingOnly(t *testing.T) {
	k := core.Kinetic{VY: 30}
	pos := vmath.Vec{}
	Integrate(&k, &pos, 0.5, 20, 1)
	if k.VY != 20 {
		t.Errorf("Expected falling speed clamped to 20, got %v", k.VY)
	}
	if pos.Y != 20 {
		t.Errorf("Expected position advanced by 20, got %v", pos.Y)
	}

	k = core.Kinetic{VY: -25}
	pos = vmath.Vec{}
	Integrate(&k, &pos, 0.5, 20, 1)
	if k.VY != -24.5 {
		t.Errorf("Expected rising speed unclamped at -24.5, got %v", k.VY)
	}
}

func TestIntegrateScalesByFrames(t *testing.T) {
	k := core.Kinetic{VX: 2}
	pos := vmath.Vec{X: 10}
	Integrate(&k, &pos, 0.5, 20, 2)
	if k.VY != 1 {
		t.Errorf("Expected gravity 0.5*2, got %v", k.VY)
	}
	if pos.X != 14 {
		t.Errorf("Expected x 14, got %v", pos.X)
	}
}

func TestAccelerateLimit(t *testing.T) {
	if v := Accelerate(4.8, 1, 0.5, 5, 1); v != 5 {
		t.Errorf("Expected 5, got %v", v)
	}
	if v := Accelerate(-15, -1, 0.5, 5, 1); v != -5 {
		t.Errorf("Expected over-limit speed pulled to -5, got %v", v)
	}
	if v := Accelerate(0, -1, 0.5, 1.5, 1); v != -0.5 {
		t.Errorf("Expected -0.5, got %v", v)
	}
}

func TestDecaySnapsToZero(t *testing.T) {
	if v := Decay(0.1, 0.95, 0.1, 1); v != 0 {
		t.Errorf("Expected snap to 0, got %v", v)
	}
	if v := Decay(4, 0.5, 0.1, 1); v != 2 {
		t.Errorf("Expected 2, got %v", v)
	}
	if v := Decay(4, 0.5, 0.1, 2); v != 1 {
		t.Errorf("Expected 1 after two frames, got %v", v)
	}
}

func TestLeadPointOvershoots(t *testing.T) {
	aim := LeadPoint(vmath.Vec{X: 0, Y: 0}, vmath.Vec{X: 100, Y: -40}, 1.5)
	if aim.X != 150 || aim.Y != -60 {
		t.Errorf("Expected (150,-60), got (%v,%v)", aim.X, aim.Y)
	}

	v := Seek(vmath.Vec{}, vmath.Vec{X: 30, Y: 40}, 3)
	if v.X < 1.79 || v.X > 1.81 || v.Y < 2.39 || v.Y > 2.41 {
		t.Errorf("Expected (1.8,2.4), got (%v,%v)", v.X, v.Y)
	}
	if z := Seek(vmath.Vec{X: 1}, vmath.Vec{X: 1}, 3); z.X != 0 || z.Y != 0 {
		t.Errorf("Expected zero velocity at aim point, got %+v", z)
	}
}
