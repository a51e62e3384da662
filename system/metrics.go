package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/status"
)

// fpsSmoothing weights the newest sample of the frame rate average
const fpsSmoothing = 0.1

// MetricsSystem publishes loop telemetry to the status registry
type MetricsSystem struct {
	ctx *engine.GameContext

	statFrames      *atomic.Int64
	statFPS         *status.AtomicFloat
	statObstacles   *atomic.Int64
	statProjectiles *atomic.Int64
	statFired       *atomic.Int64
	statHits        *atomic.Int64
	statClears      *atomic.Int64
	statStage       *atomic.Int64
	statStageName   *status.AtomicString
	statAnim        *status.AtomicString

	fps float64
}

// NewMetricsSystem creates the telemetry system with cached registry pointers
func NewMetricsSystem(ctx *engine.GameContext) *MetricsSystem {
	reg := ctx.Status
	return &MetricsSystem{
		ctx:             ctx,
		statFrames:      reg.Ints.Get(status.KeyFrameCount),
		statFPS:         reg.Floats.Get(status.KeyFrameFPS),
		statObstacles:   reg.Ints.Get(status.KeyObstacleCount),
		statProjectiles: reg.Ints.Get(status.KeyProjectileCount),
		statFired:       reg.Ints.Get(status.KeyProjectileFired),
		statHits:        reg.Ints.Get(status.KeyPlayerHits),
		statClears:      reg.Ints.Get(status.KeyStageClears),
		statStage:       reg.Ints.Get(status.KeyStageCurrent),
		statStageName:   reg.Strings.Get(status.KeyStageName),
		statAnim:        reg.Strings.Get(status.KeyPlayerAnim),
	}
}

func (s *MetricsSystem) Name() string {
	return "metrics"
}

func (s *MetricsSystem) Priority() int {
	return parameter.PriorityMetrics
}

func (s *MetricsSystem) Update(dt time.Duration) {
	s.statFrames.Store(s.ctx.Frame)

	if dt > 0 {
		sample := float64(time.Second) / float64(dt)
		if s.fps == 0 {
			s.fps = sample
		} else {
			s.fps += (sample - s.fps) * fpsSmoothing
		}
		s.statFPS.Store(s.fps)
	}

	projectiles := 0
	for _, o := range s.ctx.Obstacles {
		if o.Kind().IsProjectile() {
			projectiles++
		}
	}
	s.statObstacles.Store(int64(len(s.ctx.Obstacles) - projectiles))
	s.statProjectiles.Store(int64(projectiles))

	if s.ctx.Player != nil {
		s.statAnim.Store(s.ctx.Player.Anim.State.String())
	}
}

// EventTypes returns events this system handles
func (s *MetricsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerHit,
		event.EventProjectileSpawned,
		event.EventStageChanged,
		event.EventStageCleared,
	}
}

// HandleEvent counts gameplay events
func (s *MetricsSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerHit:
		s.statHits.Add(1)
	case event.EventProjectileSpawned:
		s.statFired.Add(1)
	case event.EventStageChanged:
		if p, ok := ev.Payload.(*event.StageChangedPayload); ok {
			s.statStage.Store(int64(p.Stage))
			s.statStageName.Store(p.Name)
		}
	case event.EventStageCleared:
		s.statClears.Add(1)
	}
}
