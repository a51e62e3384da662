package core

// Kinetic is a velocity in world pixels per reference frame
type Kinetic struct {
	VX, VY float64
}
