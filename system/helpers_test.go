package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/stage"
)

// frame is one reference frame, so per-frame tuning applies exactly once
const frame = engine.ReferenceFrame

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// floorStage is a single stage with a full-width floor at y=650 and the default start
func floorStage() stage.Descriptor {
	return stage.Descriptor{
		StageName: "Floor",
		Platforms: []stage.RectSpec{{X: 0, Y: 650, W: 1280, H: 40}},
	}
}

func newContext(t *testing.T, descs ...stage.Descriptor) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()
	if len(descs) == 0 {
		descs = []stage.Descriptor{floorStage()}
	}
	mock := engine.NewMockTimeProvider(epoch)
	ctx := engine.NewGameContext(mock)
	layout, err := stage.Assemble(descs)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if err := ctx.Init(layout); err != nil {
		t.Fatalf("init: %v", err)
	}
	return ctx, mock
}

// drainEvents returns the queued event types in order
func drainEvents(ctx *engine.GameContext) []event.EventType {
	var out []event.EventType
	for _, ev := range ctx.Events.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func countEvents(types []event.EventType, want event.EventType) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}

func countKind(obs []component.Obstacle, k component.Kind) int {
	n := 0
	for _, o := range obs {
		if o.Kind() == k {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
