package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/input"
	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/stage"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// recordingBoard captures submitted names
type recordingBoard struct {
	names chan string
}

func (b *recordingBoard) Submit(_ context.Context, name string, _ int64, _ int) bool {
	b.names <- name
	return true
}

func (b *recordingBoard) FetchTop(context.Context, int) []leaderboard.Entry {
	return []leaderboard.Entry{{Name: "fast", Time: 1000}}
}

func newShell(t *testing.T, debug bool, stages int) (*Shell, *engine.Game, *engine.MockTimeProvider) {
	t.Helper()
	mock := engine.NewMockTimeProvider(epoch)
	ctx := engine.NewGameContext(mock)

	shell := NewShell(i18n.New("en"), input.DefaultKeyTable(), input.NewHoldTracker(500*time.Millisecond, 90*time.Millisecond), debug)
	ctx.UI = shell

	descs := make([]stage.Descriptor, stages)
	for i := range descs {
		descs[i] = stage.Fallback()
	}
	layout, err := stage.Assemble(descs)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if err := ctx.Init(layout); err != nil {
		t.Fatalf("init: %v", err)
	}
	g := engine.NewGame(ctx)
	shell.Bind(g)
	return shell, g, mock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestShell_Layout(t *testing.T) {
	shell, _, _ := newShell(t, false, 1)

	r := shell.Layout(120, 40)
	if r != (Rect{X: 0, Y: 1, W: 90, H: 38}) {
		t.Errorf("Expected game area {0 1 90 38}, got %+v", r)
	}

	r = shell.Layout(50, 20)
	if r.W != 50 {
		t.Errorf("Expected the sidebar dropped on a narrow screen, got width %d", r.W)
	}
}

func TestShell_StartPauseQuit(t *testing.T) {
	shell, g, mock := newShell(t, false, 1)
	ctx := g.Context()

	shell.HandleEvent(key(tcell.KeyEnter), mock.Now())
	if !ctx.State.Running {
		t.Fatal("Expected Enter to start the run")
	}

	shell.HandleEvent(runeKey('p'), mock.Now())
	if !ctx.State.PausedByUser {
		t.Error("Expected p to pause")
	}
	shell.HandleEvent(key(tcell.KeyEscape), mock.Now())
	if ctx.State.Paused() {
		t.Error("Expected Esc to resume")
	}

	if !shell.HandleEvent(runeKey('z'), mock.Now()) {
		t.Error("Expected unbound keys to keep running")
	}
	shell.dispatch(input.ActionQuit)
	if shell.HandleEvent(runeKey('z'), mock.Now()) || !shell.Quit() {
		t.Error("Expected quit to stop the loop")
	}
}

func TestShell_HeldKeysReachInput(t *testing.T) {
	shell, g, mock := newShell(t, false, 1)

	shell.HandleEvent(runeKey(' '), mock.Now())
	shell.HandleEvent(key(tcell.KeyLeft), mock.Now())
	shell.Frame(mock.Now())

	in := g.Context().Input
	if !in.Jump || !in.Left || in.Right {
		t.Errorf("Expected jump and left held, got %+v", in)
	}

	mock.Advance(time.Second)
	shell.Frame(mock.Now())
	if g.Context().Input != (engine.InputState{}) {
		t.Errorf("Expected keys released after the hold window, got %+v", g.Context().Input)
	}
}

func TestShell_FocusLossClearsKeysAndPauses(t *testing.T) {
	shell, g, mock := newShell(t, false, 1)
	ctx := g.Context()

	shell.HandleEvent(key(tcell.KeyEnter), mock.Now())
	shell.HandleEvent(key(tcell.KeyRight), mock.Now())
	shell.HandleEvent(tcell.NewEventFocus(false), mock.Now())

	if !ctx.State.PausedByFocus {
		t.Error("Expected focus loss to pause")
	}
	shell.Frame(mock.Now())
	if ctx.Input.Right {
		t.Error("Expected held keys cleared on focus loss")
	}

	shell.HandleEvent(tcell.NewEventFocus(true), mock.Now())
	if ctx.State.Paused() {
		t.Error("Expected focus regain to resume")
	}
}

func TestShell_TutorialSteps(t *testing.T) {
	shell, g, mock := newShell(t, false, 1)

	if !g.MaybeShowTutorial() {
		t.Fatal("Expected tutorial for a first-time player")
	}
	if shell.TutorialStep() != 1 {
		t.Fatalf("Expected step 1, got %d", shell.TutorialStep())
	}

	shell.HandleEvent(key(tcell.KeyRight), mock.Now())
	shell.HandleEvent(key(tcell.KeyLeft), mock.Now())
	shell.HandleEvent(key(tcell.KeyLeft), mock.Now())
	if shell.TutorialStep() != 1 {
		t.Errorf("Expected prev to stop at step 1, got %d", shell.TutorialStep())
	}

	for range tutorialSteps {
		shell.HandleEvent(key(tcell.KeyEnter), mock.Now())
	}
	if shell.TutorialStep() != 0 {
		t.Errorf("Expected tutorial hidden after the last step, got %d", shell.TutorialStep())
	}
	if !g.Context().Store.TutorialDone() {
		t.Error("Expected tutorial flag stored")
	}
	if g.Context().State.Running {
		t.Error("Expected tutorial keys not to start the run")
	}
}

func TestShell_DebugTeleportGated(t *testing.T) {
	shell, g, mock := newShell(t, false, 2)
	shell.HandleEvent(key(tcell.KeyPgUp), mock.Now())
	if g.Context().State.CurrentStage != 1 {
		t.Error("Expected stage jumps ignored without debug")
	}

	shell, g, mock = newShell(t, true, 2)
	shell.HandleEvent(key(tcell.KeyPgUp), mock.Now())
	if g.Context().State.CurrentStage != 2 {
		t.Errorf("Expected stage 2 after next-stage, got %d", g.Context().State.CurrentStage)
	}
	shell.HandleEvent(key(tcell.KeyPgDn), mock.Now())
	shell.HandleEvent(key(tcell.KeyPgDn), mock.Now())
	if g.Context().State.CurrentStage != 1 {
		t.Errorf("Expected invalid stage 0 ignored, got %d", g.Context().State.CurrentStage)
	}
}

func TestShell_ClearPromptSubmits(t *testing.T) {
	shell, g, mock := newShell(t, false, 1)
	board := &recordingBoard{names: make(chan string, 1)}
	g.Context().Board = board

	shell.HandleEvent(key(tcell.KeyEnter), mock.Now())
	mock.Advance(12340 * time.Millisecond)
	g.Context().ClearStage()

	if !shell.prompting {
		t.Fatal("Expected the name prompt after a clear")
	}
	shell.Frame(mock.Now())
	if g.Context().Input != (engine.InputState{}) {
		t.Error("Expected no gameplay input while prompting")
	}

	shell.HandleEvent(key(tcell.KeyEnter), mock.Now())
	select {
	case name := <-board.names:
		if name != "Player" {
			t.Errorf("Expected default name Player, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a submit")
	}

	deadline := time.Now().Add(2 * time.Second)
	for shell.notice != "Score saved" && time.Now().Before(deadline) {
		shell.Frame(mock.Now())
		time.Sleep(5 * time.Millisecond)
	}
	if shell.notice != "Score saved" {
		t.Errorf("Expected saved notice, got %q", shell.notice)
	}

	// A submitted run does not prompt again
	shell.HandleEvent(runeKey('s'), mock.Now())
	if shell.prompting {
		t.Error("Expected no prompt after a successful submit")
	}
}

func TestShell_DrawHeaderAndBoard(t *testing.T) {
	shell, _, _ := newShell(t, false, 1)
	shell.DisplayLeaderboard([]leaderboard.Entry{{Name: "alice", Time: 4200}}, false)

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer s.Fini()
	s.SetSize(120, 40)

	shell.Draw(s)

	header := rowText(s, 0, 120)
	if !strings.Contains(header, "Hell Escape") || !strings.Contains(header, "Stage 1: Fallback Test Map") {
		t.Errorf("Expected title and stage in header, got %q", header)
	}

	found := false
	for y := 1; y < 39; y++ {
		if strings.Contains(rowText(s, y, 120), "alice") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected leaderboard entry in the sidebar")
	}
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}
