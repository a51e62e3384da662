package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/input"
)

// keyBinding maps one physical key to an action
type keyBinding struct {
	key    ebiten.Key
	action input.Action
}

// defaultBindings mirrors the terminal key table; windowed input sees real releases
var defaultBindings = []keyBinding{
	{ebiten.KeyArrowLeft, input.ActionLeft},
	{ebiten.KeyA, input.ActionLeft},
	{ebiten.KeyArrowRight, input.ActionRight},
	{ebiten.KeyD, input.ActionRight},
	{ebiten.KeySpace, input.ActionJump},
	{ebiten.KeyArrowUp, input.ActionJump},
	{ebiten.KeyW, input.ActionJump},
	{ebiten.KeyEnter, input.ActionStart},
	{ebiten.KeyP, input.ActionPause},
	{ebiten.KeyEscape, input.ActionPause},
	{ebiten.KeyR, input.ActionReset},
	{ebiten.KeyS, input.ActionSubmit},
	{ebiten.KeyM, input.ActionToggleBGM},
	{ebiten.KeyN, input.ActionToggleSFX},
	{ebiten.KeyEqual, input.ActionVolumeUp},
	{ebiten.KeyMinus, input.ActionVolumeDown},
	{ebiten.KeyB, input.ActionLeaderboard},
	{ebiten.KeyF1, input.ActionTutorial},
	{ebiten.KeyF3, input.ActionFrameDebug},
	{ebiten.KeyPageDown, input.ActionPrevStage},
	{ebiten.KeyPageUp, input.ActionNextStage},
	{ebiten.KeyG, input.ActionGoal},
	{ebiten.KeyQ, input.ActionQuit},
}

// heldState reads movement keys straight from the keyboard
func heldState(bindings []keyBinding) engine.InputState {
	var in engine.InputState
	for _, b := range bindings {
		if !b.action.IsHeld() || !ebiten.IsKeyPressed(b.key) {
			continue
		}
		switch b.action {
		case input.ActionLeft:
			in.Left = true
		case input.ActionRight:
			in.Right = true
		case input.ActionJump:
			in.Jump = true
		}
	}
	return in
}

// pressedActions returns the actions whose keys went down this tick, in binding order
func pressedActions(bindings []keyBinding) []input.Action {
	var out []input.Action
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
