package ui

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/input"
	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/parameter"
)

// HandleEvent routes one terminal event; returns false when the frontend should exit
func (s *Shell) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev, now)
	case *tcell.EventFocus:
		if ev.Focused {
			s.game.Focus()
		} else {
			s.hold.Clear()
			s.game.Blur()
		}
	}
	return !s.quit
}

func (s *Shell) handleKey(ev *tcell.EventKey, now time.Time) {
	if s.prompting {
		if ev.Key() == tcell.KeyCtrlC {
			s.quit = true
			return
		}
		s.prompt.InputHandler()(ev, func(p tview.Primitive) {})
		return
	}

	action := s.keys.Lookup(ev)
	if action == input.ActionNone {
		return
	}

	if s.tutorial > 0 {
		switch action {
		case input.ActionLeft:
			s.tutorialPrev()
			return
		case input.ActionRight, input.ActionStart, input.ActionJump:
			s.tutorialNext()
			return
		case input.ActionQuit:
		default:
			return
		}
	}

	if action.IsHeld() {
		s.hold.Press(action, now)
		return
	}
	s.dispatch(action)
}

func (s *Shell) dispatch(action input.Action) {
	g := s.game
	ctx := g.Context()

	switch action {
	case input.ActionStart:
		g.Start()
	case input.ActionPause:
		g.TogglePause()
	case input.ActionReset:
		s.hold.Clear()
		s.submitted, s.notice = false, ""
		g.Reset()
	case input.ActionSubmit:
		s.openPrompt()
	case input.ActionToggleBGM:
		ctx.Audio.ToggleBGM()
		s.refreshSound()
	case input.ActionToggleSFX:
		ctx.Audio.ToggleSFX()
		s.refreshSound()
	case input.ActionVolumeUp, input.ActionVolumeDown:
		s.stepVolume(action == input.ActionVolumeUp)
	case input.ActionLeaderboard:
		g.RefreshLeaderboard()
	case input.ActionTutorial:
		s.ShowTutorial()
	case input.ActionFrameDebug:
		g.ToggleFrameDebug()
	case input.ActionPrevStage, input.ActionNextStage, input.ActionGoal:
		if !s.debug {
			return
		}
		cur := ctx.State.CurrentStage
		var err error
		switch action {
		case input.ActionPrevStage:
			err = g.TeleportToStage(cur - 1)
		case input.ActionNextStage:
			err = g.TeleportToStage(cur + 1)
		default:
			err = g.TeleportToGoal(cur)
		}
		if err != nil {
			log.Printf("[ui] %s: %v", action, err)
		}
	case input.ActionQuit:
		s.quit = true
	}
}

func (s *Shell) stepVolume(up bool) {
	as, ok := s.game.Context().Audio.(AudioSettings)
	if !ok {
		return
	}
	d := -parameter.VolumeStep
	if up {
		d = parameter.VolumeStep
	}
	st := as.Settings()
	s.game.Context().Audio.SetBGMVolume(st.BGMVolume + d)
	s.game.Context().Audio.SetSFXVolume(st.SFXVolume + d)
	s.refreshSound()
}

// openPrompt shows the name field for a cleared, unsubmitted run
func (s *Shell) openPrompt() {
	if s.game == nil || !s.game.Context().State.Cleared || s.submitted {
		return
	}
	s.hold.Clear()
	s.prompting = true
	s.prompt.SetText(s.tr.T(i18n.DefaultName))
}

func (s *Shell) promptDone(key tcell.Key) {
	s.prompting = false
	if key != tcell.KeyEnter {
		return
	}
	name, ok := leaderboard.CleanName(s.prompt.GetText())
	if !ok {
		name = s.tr.T(i18n.DefaultName)
	}
	s.game.SubmitScore(name)
}
