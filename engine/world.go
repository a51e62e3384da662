package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/hell-escape/parameter"
)

// System is a per-tick simulation step
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// Update advances the system by dt
	Update(dt time.Duration)
}

// World runs registered systems in priority order
type World struct {
	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddSystem adds a system and re-sorts by priority
// Equal priorities keep registration order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs one tick of every system
func (w *World) Update(dt time.Duration) {
	for _, s := range w.systems {
		s.Update(dt)
	}
}

// FrameScale converts dt into reference frames
func FrameScale(dt time.Duration) float64 {
	return float64(dt) / float64(time.Millisecond) / parameter.FrameMs
}
