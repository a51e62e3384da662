package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
// Runes cover printable keys, Keys covers arrows, function keys and control chords
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionPause,
			tcell.KeyF1:     ActionTutorial,
			tcell.KeyF3:     ActionFrameDebug,
			tcell.KeyPgUp:   ActionNextStage,
			tcell.KeyPgDn:   ActionPrevStage,
			tcell.KeyCtrlG:  ActionToggleBGM,
			tcell.KeyCtrlS:  ActionToggleSFX,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'h': ActionLeft,
			'd': ActionRight,
			'l': ActionRight,
			' ': ActionJump,
			'w': ActionJump,
			'k': ActionJump,
			'p': ActionPause,
			'r': ActionReset,
			's': ActionSubmit,
			'm': ActionToggleBGM,
			'n': ActionToggleSFX,
			'+': ActionVolumeUp,
			'-': ActionVolumeDown,
			'b': ActionLeaderboard,
			'g': ActionGoal,
		},
	}
}

// Lookup resolves a key event; shifted letters fall back to their lowercase binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return ActionNone
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// MergeKeyTable returns base overridden by the non-nil maps of override
// An override bound to ActionNone removes the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
