package stage

import (
	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/vmath"
)

// Range is a stage's vertical extent in world coordinates
type Range struct {
	MinY float64 // Topmost platform top
	MaxY float64 // Lowest platform bottom
}

// Mid returns the vertical midpoint
func (r Range) Mid() float64 {
	return (r.MinY + r.MaxY) / 2
}

// Height returns the extent, at least 1
func (r Range) Height() float64 {
	return max(1, r.MaxY-r.MinY)
}

// Placed is a stage after stitching, in world coordinates
type Placed struct {
	Index       int // 1-based
	Name        string
	Offset      float64 // Cumulative vertical translation
	Range       Range
	Start       vmath.Vec
	Goal        *vmath.Rect // Nil if the stage declares no goal
	Backgrounds []BackgroundLayer
}

// Bounds clamps the camera
type Bounds struct {
	MinY float64
	MaxY float64
	MaxX float64
}

// Layout is the single continuous world built from all stages
type Layout struct {
	Stages    []Placed
	Platforms []*component.Platform
	Obstacles []component.Obstacle
	Bounds    Bounds
}

// Count returns the number of stages
func (l *Layout) Count() int {
	return len(l.Stages)
}

// Stage returns stage n (1-based)
func (l *Layout) Stage(n int) (*Placed, bool) {
	if n < 1 || n > len(l.Stages) {
		return nil, false
	}
	return &l.Stages[n-1], true
}

// Ranges returns stage ranges in order
func (l *Layout) Ranges() []Range {
	out := make([]Range, len(l.Stages))
	for i := range l.Stages {
		out[i] = l.Stages[i].Range
	}
	return out
}
