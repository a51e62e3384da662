package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/status"
)

// Command is work posted onto the loop goroutine
type Command func(g *Game)

// Game drives the simulation: systems, event dispatch, commands from other goroutines
// All methods except Post and Snapshot must be called from the loop goroutine
type Game struct {
	ctx    *GameContext
	world  *World
	router *EventRouter

	commands chan Command
	snapshot atomic.Pointer[Snapshot]

	lastTick time.Time
}

// NewGame wraps an initialized context
func NewGame(ctx *GameContext) *Game {
	g := &Game{
		ctx:      ctx,
		world:    NewWorld(),
		router:   NewEventRouter(ctx.Events),
		commands: make(chan Command, parameter.CommandQueueSize),
	}
	g.snapshot.Store(g.buildSnapshot())
	return g
}

// Context returns the game context
func (g *Game) Context() *GameContext { return g.ctx }

// World returns the system registry
func (g *Game) World() *World { return g.world }

// Router returns the event router
func (g *Game) Router() *EventRouter { return g.router }

// AddSystem registers a system, and its event handler if it has one
func (g *Game) AddSystem(s System) {
	g.world.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		g.router.Register(h)
	}
}

// Post queues a command for the next tick; safe from any goroutine
// Returns false if the queue is full and the command was dropped
func (g *Game) Post(cmd Command) bool {
	select {
	case g.commands <- cmd:
		return true
	default:
		log.Printf("[engine] command queue full, dropping command")
		return false
	}
}

// Snapshot returns the last published state; safe from any goroutine
func (g *Game) Snapshot() Snapshot {
	return *g.snapshot.Load()
}

// ===== Run control =====

// Start begins a run; a cleared run is reset first
// Called from a user gesture so the audio device can be unlocked here
func (g *Game) Start() {
	ctx := g.ctx
	if ctx.State.Running {
		return
	}
	if ctx.State.Cleared {
		g.Reset()
		return
	}

	ctx.State.Running = true
	ctx.State.PausedByUser = false
	ctx.State.PausedByFocus = false
	ctx.Clock.Restart()

	if err := ctx.Audio.Unlock(); err != nil {
		log.Printf("[engine] audio unlock failed: %v", err)
	}
	// A reset from a paused run would otherwise start the new run muted
	ctx.Audio.ResumeAll()
	ctx.Audio.PlayLoop(parameter.SoundBGM)
	ctx.UI.SetPaused(false)
	g.publishRunState()
	log.Printf("[engine] run started at stage %d", ctx.State.CurrentStage)
}

// TogglePause flips the user pause; resuming clears a focus pause as well
func (g *Game) TogglePause() {
	ctx := g.ctx
	if !ctx.State.Running {
		return
	}

	if ctx.State.Paused() {
		if ctx.State.PausedByFocus && ctx.Player != nil {
			ctx.Player.VX = ctx.State.SavedVelocity.VX
		}
		ctx.State.PausedByUser = false
		ctx.State.PausedByFocus = false
		g.resume()
	} else {
		ctx.State.PausedByUser = true
		g.pause()
	}
	g.publishRunState()
}

// Blur pauses on focus loss, saving and zeroing the player's velocity
// A user pause already in effect stays; both sources must clear before play resumes
func (g *Game) Blur() {
	ctx := g.ctx
	if !ctx.State.Running || ctx.State.PausedByFocus || ctx.Player == nil {
		return
	}

	wasPaused := ctx.State.Paused()
	ctx.State.SavedVelocity = ctx.Player.Kinetic
	ctx.Player.VX, ctx.Player.VY = 0, 0
	ctx.State.PausedByFocus = true
	if !wasPaused {
		g.pause()
	}
	g.publishRunState()
	log.Printf("[engine] auto-paused on focus loss")
}

// Focus re-snaps the player and restores horizontal velocity after a focus pause
// Play resumes only if the user has not paused as well
func (g *Game) Focus() {
	ctx := g.ctx
	if !ctx.State.PausedByFocus || ctx.Player == nil {
		return
	}

	ctx.RepositionPlayer()
	ctx.Player.VX = ctx.State.SavedVelocity.VX
	ctx.State.PausedByFocus = false
	if !ctx.State.PausedByUser {
		g.resume()
	}
	g.publishRunState()
	log.Printf("[engine] focus regained, user pause=%v", ctx.State.PausedByUser)
}

func (g *Game) pause() {
	g.ctx.Clock.Pause()
	g.ctx.Audio.PauseAll()
	g.ctx.UI.SetPaused(true)
}

func (g *Game) resume() {
	g.ctx.Clock.Resume()
	g.ctx.Audio.ResumeAll()
	g.ctx.UI.SetPaused(false)
}

// Reset clears progress and restarts from stage 1
func (g *Game) Reset() {
	ctx := g.ctx
	log.Printf("[engine] reset")

	ctx.State.Running = false
	ctx.State.PausedByUser = false
	ctx.State.PausedByFocus = false
	ctx.State.Cleared = false
	ctx.State.ClearTime = 0
	ctx.Input = InputState{}
	ctx.Camera.Reset()
	if ctx.Player != nil {
		ctx.Player.ResetMotion(ctx.Tuning.Friction)
	}
	ctx.PruneProjectiles(true)
	ctx.Audio.StopLoop()

	if err := ctx.Store.ClearProgress(); err != nil {
		log.Printf("[engine] clear progress: %v", err)
	}
	ctx.State.SkipNextAutoSave = true

	if err := g.TeleportToStage(1); err != nil {
		log.Printf("[engine] reset teleport: %v", err)
	}
	g.Start()
}

// ===== Teleports =====

// TeleportToStage places the player at the start of stage n
func (g *Game) TeleportToStage(n int) error {
	ctx := g.ctx
	if ctx.Layout == nil || ctx.Player == nil {
		return ErrNotInitialized
	}
	st, ok := ctx.Layout.Stage(n)
	if !ok {
		log.Printf("[engine] teleport: invalid stage %d", n)
		return fmt.Errorf("teleport to stage %d: %w", n, ErrInvalidStage)
	}

	p := ctx.Player
	p.PlaceAt(st.Start.X, st.Start.Y)
	p.VX, p.VY = 0, 0
	p.CancelCharge()
	ctx.RepositionPlayer()
	ctx.Camera.Snap(p.Hitbox(), ctx.Layout.Bounds)
	ctx.SetStage(n)

	log.Printf("[engine] teleported to stage %d at (%.0f, %.0f)", n, p.Pos.X, p.Pos.Y)
	return nil
}

// TeleportToGoal stands the player on the goal of stage n
// Falls back to the stage start when the stage has no goal
func (g *Game) TeleportToGoal(n int) error {
	ctx := g.ctx
	if ctx.Layout == nil || ctx.Player == nil {
		return ErrNotInitialized
	}
	st, ok := ctx.Layout.Stage(n)
	if !ok {
		log.Printf("[engine] teleport to goal: invalid stage %d", n)
		return fmt.Errorf("teleport to goal %d: %w", n, ErrInvalidStage)
	}
	if st.Goal == nil {
		log.Printf("[engine] teleport to goal: %v in stage %d, using stage start", ErrNoGoal, n)
		return g.TeleportToStage(n)
	}

	p := ctx.Player
	p.CancelCharge()
	p.PlaceOn(st.Goal.CenterX(), st.Goal.Top())
	p.VX, p.VY = 0, 0
	ctx.Camera.Snap(p.Hitbox(), ctx.Layout.Bounds)
	ctx.SetStage(n)

	log.Printf("[engine] teleported to stage %d goal at (%.0f, %.0f)", n, p.Pos.X, p.Pos.Y)
	return nil
}

// applyTeleport executes a teleport requested during the tick
func (g *Game) applyTeleport() {
	n := g.ctx.takeTeleport()
	if n == 0 {
		return
	}
	if err := g.TeleportToStage(n); err != nil {
		log.Printf("[engine] teleporter ignored: %v", err)
	}
}

// RestoreProgress places the player at the saved position
// Returns false when there is no usable save
func (g *Game) RestoreProgress() bool {
	ctx := g.ctx
	if ctx.Layout == nil || ctx.Player == nil {
		return false
	}
	prog, ok := ctx.Store.LoadProgress()
	if !ok {
		return false
	}
	if _, ok := ctx.Layout.Stage(prog.Stage); !ok {
		log.Printf("[engine] saved stage %d not in layout, ignoring save", prog.Stage)
		return false
	}

	ctx.Player.PlaceAt(prog.X, prog.Y)
	ctx.RepositionPlayer()
	ctx.Camera.Snap(ctx.Player.Hitbox(), ctx.Layout.Bounds)
	ctx.SetStage(prog.Stage)
	log.Printf("[engine] restored stage %d at (%.0f, %.0f)", prog.Stage, prog.X, prog.Y)
	return true
}

// ToggleFrameDebug flips the hitbox and frame overlay
func (g *Game) ToggleFrameDebug() bool {
	g.ctx.State.ShowFrameDebug = !g.ctx.State.ShowFrameDebug
	return g.ctx.State.ShowFrameDebug
}

// SetInput replaces the held key state
func (g *Game) SetInput(in InputState) {
	g.ctx.Input = in
}

// ===== Leaderboard =====

// SubmitScore submits the cleared run under name in the background
// The result is reported to the UI on the loop goroutine, followed by a refresh on success
func (g *Game) SubmitScore(name string) {
	ctx := g.ctx
	if !ctx.State.Cleared {
		log.Printf("[engine] submit ignored: run not cleared")
		return
	}
	board := ctx.Board
	clearMs := ctx.State.ClearTime.Milliseconds()
	stageNum := ctx.State.CurrentStage

	core.Go(func() {
		reqCtx, cancel := context.WithTimeout(context.Background(), parameter.LeaderboardTimeout)
		defer cancel()
		ok := board.Submit(reqCtx, name, clearMs, stageNum)
		g.Post(func(g *Game) {
			g.ctx.UI.ScoreSubmitted(ok)
			if ok {
				g.RefreshLeaderboard()
			}
		})
	})
}

// RefreshLeaderboard shows the loading state and fetches the top entries in the background
func (g *Game) RefreshLeaderboard() {
	board := g.ctx.Board
	g.ctx.UI.DisplayLeaderboard(nil, true)

	core.Go(func() {
		reqCtx, cancel := context.WithTimeout(context.Background(), parameter.LeaderboardTimeout)
		defer cancel()
		entries := board.FetchTop(reqCtx, parameter.LeaderboardTopN)
		g.Post(func(g *Game) {
			g.ctx.UI.DisplayLeaderboard(entries, false)
		})
	})
}

// ===== Tutorial =====

// MaybeShowTutorial shows the tutorial to a first-time player
func (g *Game) MaybeShowTutorial() bool {
	if g.ctx.Store.TutorialDone() {
		return false
	}
	g.ctx.UI.ShowTutorial()
	// Seen once is enough, even if the player skips past it
	if err := g.ctx.Store.SetTutorialDone(true); err != nil {
		log.Printf("[engine] tutorial flag: %v", err)
	}
	return true
}

// CompleteTutorial records that the tutorial was seen
func (g *Game) CompleteTutorial() {
	if err := g.ctx.Store.SetTutorialDone(true); err != nil {
		log.Printf("[engine] tutorial flag: %v", err)
	}
}

// ResetTutorial clears the flag and shows the tutorial again
func (g *Game) ResetTutorial() {
	if err := g.ctx.Store.SetTutorialDone(false); err != nil {
		log.Printf("[engine] tutorial flag: %v", err)
	}
	g.ctx.UI.ShowTutorial()
}

func (g *Game) publishRunState() {
	g.ctx.Status.Bools.Get(status.KeyRunning).Store(g.ctx.State.Running)
	g.ctx.Status.Bools.Get(status.KeyPaused).Store(g.ctx.State.Paused())
}
