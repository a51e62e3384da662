package status

import "sync/atomic"

// Metric keys written by the game loop
const (
	KeyFrameCount      = "frame.count"
	KeyFrameFPS        = "frame.fps"
	KeyStageCurrent    = "stage.current"
	KeyStageName       = "stage.name"
	KeyObstacleCount   = "obstacle.count"
	KeyProjectileCount = "projectile.count"
	KeyProjectileFired = "projectile.fired"
	KeyPlayerHits      = "player.hits"
	KeyPlayerAnim      = "player.anim"
	KeyStageClears     = "stage.clears"
	KeyRunning         = "game.running"
	KeyPaused          = "game.paused"
)

// Registry is the central metrics facade
// The loop writes through cached pointers; readers on other goroutines use Snapshot
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies every metric into a plain map for serialization
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	collect(r.Bools, out, func(v *atomic.Bool) any { return v.Load() })
	collect(r.Ints, out, func(v *atomic.Int64) any { return v.Load() })
	collect(r.Floats, out, func(v *AtomicFloat) any { return v.Load() })
	collect(r.Strings, out, func(v *AtomicString) any { return v.Load() })
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}
