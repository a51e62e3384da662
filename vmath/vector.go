package vmath

import "math"

// Vec is a 2D point or displacement in world pixels
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns unit vector, zero-safe
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
