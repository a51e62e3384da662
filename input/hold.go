package input

import (
	"time"

	"github.com/lixenwraith/hell-escape/engine"
)

// HoldTracker emulates key release for terminals, which report presses only
//
// A first press holds the key for the initial window, long enough to cover the
// terminal's auto-repeat delay; each repeat while held extends it by the shorter
// repeat window. The key reads as released once its window lapses.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[Action]time.Time, 3),
	}
}

// Press records a key event for a held action; other actions are ignored
func (h *HoldTracker) Press(a Action, now time.Time) {
	if !a.IsHeld() {
		return
	}

	window := h.initial
	if h.Held(a, now) {
		window = h.repeat
	}
	h.until[a] = now.Add(window)

	// Terminals repeat only the last key, so the opposite direction is released
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
}

// Release drops an action immediately
func (h *HoldTracker) Release(a Action) {
	delete(h.until, a)
}

// Held reports whether the action is inside its hold window at now
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// State returns the held gameplay keys at now
func (h *HoldTracker) State(now time.Time) engine.InputState {
	return engine.InputState{
		Left:  h.Held(ActionLeft, now),
		Right: h.Held(ActionRight, now),
		Jump:  h.Held(ActionJump, now),
	}
}

// Clear releases every key, used on focus loss and reset
func (h *HoldTracker) Clear() {
	clear(h.until)
}
