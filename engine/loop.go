package engine

import (
	"time"

	"github.com/lixenwraith/hell-escape/parameter"
)

// MaxDelta caps the duration of a single tick
const MaxDelta = time.Duration(parameter.MaxDeltaMs) * time.Millisecond

// ReferenceFrame is parameter.FrameMs as a duration; one tick of it scales tuning by exactly 1
const ReferenceFrame = 16670 * time.Microsecond

// Tick runs one frame at real time now:
// drain posted commands, advance systems when running and not paused,
// apply a deferred teleport, dispatch events, publish a snapshot
func (g *Game) Tick(now time.Time) {
	g.drainCommands()

	dt := g.delta(now)
	ctx := g.ctx
	ctx.Frame++

	if ctx.Player != nil && ctx.State.Running && !ctx.State.Paused() {
		g.world.Update(dt)
		g.applyTeleport()
	}

	g.router.DispatchAll()
	g.publishRunState()
	g.snapshot.Store(g.buildSnapshot())
}

// delta returns the clamped time since the previous tick
// The reference advances every tick, paused or not, so resuming never produces a spike
func (g *Game) delta(now time.Time) time.Duration {
	if g.lastTick.IsZero() {
		g.lastTick = now
	}
	dt := now.Sub(g.lastTick)
	g.lastTick = now

	if dt < 0 {
		return 0
	}
	return min(dt, MaxDelta)
}

func (g *Game) drainCommands() {
	for {
		select {
		case cmd := <-g.commands:
			cmd(g)
		default:
			return
		}
	}
}
