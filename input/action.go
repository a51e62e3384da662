package input

import "strings"

// Action is a game command bound to a key
type Action uint8

const (
	ActionNone Action = iota

	// Held gameplay keys
	ActionLeft
	ActionRight
	ActionJump

	// Run control
	ActionStart
	ActionPause
	ActionReset
	ActionSubmit

	// Settings
	ActionToggleBGM
	ActionToggleSFX
	ActionVolumeUp
	ActionVolumeDown

	// Panels
	ActionLeaderboard
	ActionTutorial
	ActionFrameDebug

	// Stage jumps, honored only with debug enabled
	ActionPrevStage
	ActionNextStage
	ActionGoal

	ActionQuit

	actionCount
)

// actionNames is indexed by Action; used by String and the keymap loader
var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionJump:        "jump",
	ActionStart:       "start",
	ActionPause:       "pause",
	ActionReset:       "reset",
	ActionSubmit:      "submit",
	ActionToggleBGM:   "toggle_bgm",
	ActionToggleSFX:   "toggle_sfx",
	ActionVolumeUp:    "volume_up",
	ActionVolumeDown:  "volume_down",
	ActionLeaderboard: "leaderboard",
	ActionTutorial:    "tutorial",
	ActionFrameDebug:  "frame_debug",
	ActionPrevStage:   "prev_stage",
	ActionNextStage:   "next_stage",
	ActionGoal:        "goal",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsHeld reports whether the action is a continuous gameplay key
func (a Action) IsHeld() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}

// ActionByName resolves a keymap action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}
