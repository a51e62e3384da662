package physics

import (
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/vmath"
)

// Integrate applies gravity then advances position by velocity, all scaled by s reference frames
// Falling speed is clamped to terminal; rising speed is never clamped
func Integrate(k *core.Kinetic, pos *vmath.Vec, gravity, terminal, s float64) {
	k.VY += gravity * s
	k.VY = ClampFall(k.VY, terminal)
	pos.X += k.VX * s
	pos.Y += k.VY * s
}

// ClampFall limits downward (positive) velocity to terminal
func ClampFall(vy, terminal float64) float64 {
	if vy > terminal {
		return terminal
	}
	return vy
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX += vx
	k.VY += vy
}

// SetImpulse overrides velocity (hard redirect/stun)
func SetImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}

// Stop zeroes velocity
func Stop(k *core.Kinetic) {
	k.VX, k.VY = 0, 0
}
