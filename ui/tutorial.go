package ui

import "github.com/lixenwraith/hell-escape/i18n"

var tutorialSteps = i18n.TutorialSteps

// TutorialStep returns the visible step (1-based), 0 when hidden
func (s *Shell) TutorialStep() int {
	return s.tutorial
}

func (s *Shell) tutorialNext() {
	if s.tutorial < len(tutorialSteps) {
		s.tutorial++
		return
	}
	s.tutorial = 0
	if s.game != nil {
		s.game.CompleteTutorial()
	}
}

func (s *Shell) tutorialPrev() {
	if s.tutorial > 1 {
		s.tutorial--
	}
}
