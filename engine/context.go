package engine

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/save"
	"github.com/lixenwraith/hell-escape/stage"
	"github.com/lixenwraith/hell-escape/status"
	"github.com/lixenwraith/hell-escape/vmath"
)

var (
	// ErrInvalidStage is returned for a stage number outside the loaded layout
	ErrInvalidStage = errors.New("invalid stage")
	// ErrNoGoal is returned when a stage declares no goal
	ErrNoGoal = errors.New("stage has no goal")
	// ErrNotInitialized is returned before a layout is installed
	ErrNotInitialized = errors.New("game context not initialized")
)

// InputState is the held state of the gameplay keys
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// GameState is the run state owned by the loop goroutine
type GameState struct {
	Running bool

	// Pause sources are tracked separately so regaining focus never overrides a user pause
	PausedByUser  bool
	PausedByFocus bool

	CurrentStage int // 1-based

	Cleared   bool // Latched by the first goal contact of a run
	ClearTime time.Duration

	// SkipNextAutoSave suppresses the save on the next stage change, set by reset
	SkipNextAutoSave bool

	// SavedVelocity holds the velocity captured on focus loss
	SavedVelocity core.Kinetic

	ShowFrameDebug bool
}

// Paused reports whether either pause source is active
func (s *GameState) Paused() bool {
	return s.PausedByUser || s.PausedByFocus
}

// GameContext holds all simulation state and the collaborators the loop reaches through
//
// Ownership: every field is accessed only from the loop goroutine
// Other goroutines read the published Snapshot and write through Game.Post
type GameContext struct {
	// ===== Set once by Init =====
	Layout    *stage.Layout
	Tuning    parameter.Tuning
	Platforms []*component.Platform

	// ===== Simulation =====
	Player    *component.Player
	Obstacles []component.Obstacle // Static obstacles followed by live projectiles
	Camera    Camera
	Input     InputState
	State     GameState

	// ===== Time =====
	Time  TimeProvider   // Real time; drives dt
	Clock *PausableClock // Game time; drives emitters and the run timer
	Frame int64          // Tick counter

	// ===== Routing and metrics =====
	Events *event.EventQueue
	Status *status.Registry

	// ===== Collaborators =====
	Audio AudioPlayer
	UI    UI
	Store ProgressStore
	Board leaderboard.Client

	pendingTeleport int // Stage requested by a teleporter during this tick, 0 if none
}

// NewGameContext creates a context with no-op collaborators; Init installs the world
func NewGameContext(tp TimeProvider) *GameContext {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &GameContext{
		Tuning: parameter.DefaultTuning(),
		Time:   tp,
		Clock:  NewPausableClock(tp),
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
		Audio:  NopAudio{},
		UI:     NopUI{},
		Store:  &MemoryProgress{},
		Board:  leaderboard.Disabled{},
		State:  GameState{CurrentStage: 1},
	}
}

// Init installs a stitched layout and places the player at the first stage start
func (ctx *GameContext) Init(layout *stage.Layout) error {
	if layout == nil || layout.Count() == 0 {
		return fmt.Errorf("init: %w", stage.ErrNoPlatforms)
	}

	ctx.Layout = layout
	ctx.Platforms = append([]*component.Platform(nil), layout.Platforms...)
	ctx.Obstacles = append([]component.Obstacle(nil), layout.Obstacles...)

	first, _ := layout.Stage(1)
	ctx.Player = component.NewPlayer(first.Start.X, first.Start.Y, ctx.Tuning.Friction)
	ctx.State.CurrentStage = 1
	ctx.Camera.Snap(ctx.Player.Hitbox(), layout.Bounds)

	ctx.UI.UpdateStage(1, first.Name)
	ctx.Status.Ints.Get(status.KeyStageCurrent).Store(1)
	ctx.Status.Strings.Get(status.KeyStageName).Store(first.Name)

	log.Printf("[engine] world ready: %d stages, %d platforms, %d obstacles, bounds y[%.0f, %.0f]",
		layout.Count(), len(ctx.Platforms), len(ctx.Obstacles), layout.Bounds.MinY, layout.Bounds.MaxY)
	return nil
}

// Shutdown stops audio and freezes game time
func (ctx *GameContext) Shutdown() {
	ctx.Audio.StopLoop()
	ctx.Clock.Pause()
	ctx.State.Running = false
	log.Printf("[engine] shutdown at frame %d, stage %d", ctx.Frame, ctx.State.CurrentStage)
}

// PushEvent queues an event for dispatch at the end of the tick
func (ctx *GameContext) PushEvent(t event.EventType, payload any) {
	ctx.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: ctx.Frame})
}

// PlaySound requests a one-shot effect
func (ctx *GameContext) PlaySound(id string) {
	ctx.PushEvent(event.EventSoundRequest, &event.SoundPayload{ID: id})
}

// StageName returns the display name of stage n, empty if out of range
func (ctx *GameContext) StageName(n int) string {
	if ctx.Layout == nil {
		return ""
	}
	if st, ok := ctx.Layout.Stage(n); ok {
		return st.Name
	}
	return ""
}

// SetStage records the current stage, updates the label and auto-saves
// The save is skipped exactly once after a reset
func (ctx *GameContext) SetStage(n int) {
	ctx.State.CurrentStage = n
	name := ctx.StageName(n)
	ctx.UI.UpdateStage(n, name)
	ctx.PushEvent(event.EventStageChanged, &event.StageChangedPayload{Stage: n, Name: name})

	if ctx.State.SkipNextAutoSave {
		ctx.State.SkipNextAutoSave = false
		log.Printf("[engine] auto-save suppressed after reset (stage %d)", n)
		return
	}
	if ctx.Player == nil {
		return
	}
	p := save.Progress{Stage: n, X: ctx.Player.Pos.X, Y: ctx.Player.Pos.Y}
	if err := ctx.Store.SaveProgress(p); err != nil {
		log.Printf("[engine] auto-save failed: %v", err)
	}
}

// ClearStage runs the single clear path; returns false if the run was already cleared
func (ctx *GameContext) ClearStage() bool {
	if ctx.State.Cleared {
		return false
	}
	ctx.State.Cleared = true
	ctx.State.Running = false
	ctx.State.ClearTime = ctx.Clock.Elapsed()
	ctx.Clock.Pause()

	ctx.Audio.StopLoop()
	ctx.PlaySound(parameter.SoundClear)
	ctx.UI.ShowStageCleared(ctx.State.ClearTime, ctx.State.CurrentStage)
	ctx.PushEvent(event.EventStageCleared, &event.StageClearedPayload{
		Stage:     ctx.State.CurrentStage,
		ClearTime: ctx.State.ClearTime,
	})

	log.Printf("[engine] stage cleared in %v (stage %d)", ctx.State.ClearTime, ctx.State.CurrentStage)
	return true
}

// RequestTeleport defers a teleport until the collision pass has finished
func (ctx *GameContext) RequestTeleport(stageNum int) {
	if ctx.pendingTeleport == 0 {
		ctx.pendingTeleport = stageNum
	}
}

// takeTeleport returns and clears the pending teleport target
func (ctx *GameContext) takeTeleport() int {
	n := ctx.pendingTeleport
	ctx.pendingTeleport = 0
	return n
}

// RepositionPlayer re-snaps a near-stationary player onto a platform
// Prefers platforms under the hitbox center within reach below the feet, else the nearest platform
// Returns false when skipped
func (ctx *GameContext) RepositionPlayer() bool {
	p := ctx.Player
	if p == nil || len(ctx.Platforms) == 0 {
		return false
	}
	if math.Abs(p.VY) > parameter.RepositionMaxVY || p.Charging {
		return false
	}

	hb := p.Hitbox()
	cx, feet := hb.CenterX(), hb.Bottom()

	var best *component.Platform
	bestDist := math.Inf(1)
	for _, pl := range ctx.Platforms {
		if !pl.SpansX(cx) || pl.Top() < feet-parameter.RepositionRange {
			continue
		}
		if d := math.Abs(pl.Top() - feet); d < bestDist {
			best, bestDist = pl, d
		}
	}

	if best == nil {
		for _, pl := range ctx.Platforms {
			top := vmath.Vec{X: pl.CenterX(), Y: pl.Top()}
			if d := vmath.Distance(vmath.Vec{X: cx, Y: feet}, top); d < bestDist {
				best, bestDist = pl, d
			}
		}
		// Fallback platform may not span the player; pull the hitbox onto it
		minX := best.Left() - parameter.HitboxOffsetX
		maxX := best.Right() - parameter.HitboxWidth - parameter.HitboxOffsetX
		p.Pos.X = vmath.Clamp(p.Pos.X, minX, max(minX, maxX))
	}

	p.LandOn(best.Top())
	p.VX, p.VY = 0, 0
	p.Prev = p.Pos
	log.Printf("[engine] player repositioned on platform at y=%.0f", best.Top())
	return true
}

// PruneProjectiles removes dead projectiles and, if all is set, every projectile
func (ctx *GameContext) PruneProjectiles(all bool) {
	kept := ctx.Obstacles[:0]
	for _, o := range ctx.Obstacles {
		if o.Kind().IsProjectile() && (all || !o.Alive()) {
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(ctx.Obstacles); i++ {
		ctx.Obstacles[i] = nil
	}
	ctx.Obstacles = kept
}
