// Package ui is the terminal presentation layer: a tview sidebar and header
// drawn around the game area, plus key routing into the engine
package ui

import (
	"log"
	"time"

	"github.com/rivo/tview"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/input"
	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/save"
)

var _ engine.UI = (*Shell)(nil)

// AudioSettings is implemented by audio players that expose their mixer preferences
type AudioSettings interface {
	Settings() save.AudioSettings
}

// Shell implements engine.UI for the terminal frontend
//
// Every method runs on the loop goroutine; the engine calls the engine.UI
// methods during Tick and the frontend calls HandleEvent and Draw between ticks
type Shell struct {
	game  *engine.Game
	tr    *i18n.Translator
	keys  *input.KeyTable
	hold  *input.HoldTracker
	debug bool

	// Widgets
	header   *tview.TextView
	footer   *tview.TextView
	controls *tview.TextView
	board    *tview.Table
	sound    *tview.TextView
	message  *tview.TextView
	sidebar  *tview.Flex
	prompt   *tview.InputField

	// Presented state
	stageNum  int
	stageName string
	paused    bool
	clearTime time.Duration
	submitted bool
	prompting bool
	entries   []leaderboard.Entry
	loading   bool
	notice    string
	tutorial  int // Current step, 0 when hidden

	quit bool
}

// NewShell builds the widgets; Bind attaches the game before the first event
func NewShell(tr *i18n.Translator, keys *input.KeyTable, hold *input.HoldTracker, debug bool) *Shell {
	s := &Shell{
		tr:    tr,
		keys:  keys,
		hold:  hold,
		debug: debug,
	}
	s.build()
	return s
}

// Bind attaches the game the shell drives
func (s *Shell) Bind(g *engine.Game) {
	s.game = g
	s.refreshSound()
}

// ===== engine.UI =====

func (s *Shell) UpdateStage(n int, name string) {
	s.stageNum, s.stageName = n, name
}

func (s *Shell) ShowStageCleared(clearTime time.Duration, stage int) {
	s.clearTime = clearTime
	s.submitted = false
	s.notice = s.tr.T(i18n.ClearedPrompt, stage, clearTime.Seconds())
	s.openPrompt()
	log.Printf("[ui] stage %d cleared in %v", stage, clearTime)
}

func (s *Shell) DisplayLeaderboard(entries []leaderboard.Entry, loading bool) {
	s.entries = entries
	s.loading = loading
	s.refreshBoard()
}

func (s *Shell) ShowTutorial() {
	s.tutorial = 1
}

func (s *Shell) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Shell) ScoreSubmitted(ok bool) {
	if ok {
		s.submitted = true
		s.notice = s.tr.T(i18n.Saved)
		return
	}
	s.notice = s.tr.T(i18n.SaveFailed)
}

// Quit reports whether a quit action was received
func (s *Shell) Quit() bool {
	return s.quit
}

// Frame publishes the held keys and advances the game one tick
func (s *Shell) Frame(now time.Time) {
	if s.prompting {
		s.game.SetInput(engine.InputState{})
	} else {
		s.game.SetInput(s.hold.State(now))
	}
	s.game.Tick(now)
}

func (s *Shell) refreshSound() {
	if s.game == nil {
		return
	}
	as, ok := s.game.Context().Audio.(AudioSettings)
	if !ok {
		s.sound.SetText(s.tr.T(i18n.SoundNote))
		return
	}
	st := as.Settings()
	onOff := func(b bool) string {
		if b {
			return s.tr.T(i18n.On)
		}
		return s.tr.T(i18n.Off)
	}
	s.sound.SetText(
		s.tr.T(i18n.SoundBGM) + ": " + onOff(st.BGMEnabled) + " " + percent(st.BGMVolume) + "\n" +
			s.tr.T(i18n.SoundSFX) + ": " + onOff(st.SFXEnabled) + " " + percent(st.SFXVolume),
	)
}
