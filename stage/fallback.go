package stage

// Fallback returns a small playable stage used when no descriptor loads
func Fallback() Descriptor {
	return Descriptor{
		StageName:   "Fallback Test Map",
		PlayerStart: &Point{X: 640, Y: 550},
		Platforms: []RectSpec{
			{X: 50, Y: 650, W: 1180, H: 40},
			{X: 500, Y: 550, W: 280, H: 30},
			{X: 350, Y: 450, W: 200, H: 25},
			{X: 700, Y: 350, W: 200, H: 25},
			{X: 400, Y: 250, W: 180, H: 25},
		},
		Obstacles: []ObstacleSpec{
			{Type: "iceFloor", X: 700, Y: 440, W: 200, H: 10},
			{Type: "spring", X: 420, Y: 330, W: 60, H: 20, Force: 12, Direction: "right"},
			{Type: "cannon", X: 200, Y: 100, W: 50, H: 50, Rate: 2500, Dir: "right"},
			{Type: "goal", X: 430, Y: 200, W: 120, H: 20},
		},
	}
}
