package physics

import (
	"math"

	"github.com/lixenwraith/hell-escape/vmath"
)

// Accelerate pushes v toward dir*limit by accel*s, never past the limit in that direction
// dir is -1 or +1; an existing speed beyond the limit is pulled back to it
func Accelerate(v, dir, accel, limit, s float64) float64 {
	if dir < 0 {
		return math.Max(v-accel*s, -limit)
	}
	return math.Min(v+accel*s, limit)
}

// Decay multiplies v by factor once per reference frame and snaps to zero below eps
func Decay(v, factor, eps, s float64) float64 {
	if s == 1 {
		v *= factor
	} else {
		v *= math.Pow(factor, s)
	}
	return vmath.SnapZero(v, eps)
}
