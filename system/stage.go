package system

import (
	"math"
	"time"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/stage"
)

// StageSystem detects which stage the player is in from the hitbox center
type StageSystem struct {
	ctx    *engine.GameContext
	ranges []stage.Range
}

// NewStageSystem creates the stage detector over the installed layout
func NewStageSystem(ctx *engine.GameContext) *StageSystem {
	s := &StageSystem{ctx: ctx}
	if ctx.Layout != nil {
		s.ranges = ctx.Layout.Ranges()
	}
	return s
}

func (s *StageSystem) Name() string {
	return "stage"
}

func (s *StageSystem) Priority() int {
	return parameter.PriorityStage
}

func (s *StageSystem) Update(_ time.Duration) {
	if s.ctx.Player == nil || len(s.ranges) == 0 {
		return
	}
	cy := s.ctx.Player.Hitbox().CenterY()
	if n, changed := DetectStage(cy, s.ranges, s.ctx.State.CurrentStage); changed {
		s.ctx.SetStage(n)
	}
}

// DetectStage returns the stage whose range midpoint is nearest to y
// The current stage is kept unless the best candidate is closer by more than StageHysteresis
// Ties resolve to the lower stage
func DetectStage(y float64, ranges []stage.Range, current int) (int, bool) {
	best, bestDist := 0, math.Inf(1)
	for i, r := range ranges {
		if d := math.Abs(y - r.Mid()); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	if best == 0 || best == current {
		return current, false
	}

	currentDist := math.Inf(1)
	if current >= 1 && current <= len(ranges) {
		currentDist = math.Abs(y - ranges[current-1].Mid())
	}
	if bestDist+parameter.StageHysteresis < currentDist {
		return best, true
	}
	return current, false
}
