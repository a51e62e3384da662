package physics

import "github.com/lixenwraith/hell-escape/vmath"

// LeadPoint returns an aim point past the target along the line from origin
// overshoot > 1 aims beyond the target so a moving target can sidestep
func LeadPoint(origin, target vmath.Vec, overshoot float64) vmath.Vec {
	return origin.Add(target.Sub(origin).Scale(overshoot))
}

// Seek returns a velocity of magnitude speed from pos toward aim
// Zero when already at the aim point
func Seek(pos, aim vmath.Vec, speed float64) vmath.Vec {
	return aim.Sub(pos).Normalize().Scale(speed)
}
