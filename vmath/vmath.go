package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FrameAlpha converts a per-reference-frame interpolation factor into one for s reference frames
// FrameAlpha(k, 1) == k
func FrameAlpha(k, s float64) float64 {
	if s == 1 {
		return k
	}
	return 1 - math.Pow(1-k, s)
}

// SnapZero returns 0 when |v| is below eps
func SnapZero(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}
