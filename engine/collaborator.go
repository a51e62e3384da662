package engine

import (
	"time"

	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/save"
)

// AudioPlayer plays sound effects and the background loop
// All calls are fire-and-forget; implementations log their own failures
type AudioPlayer interface {
	PlayOneShot(id string)
	PlayLoop(id string)
	StopLoop()
	PauseAll()
	ResumeAll()

	// Unlock brings the output device up; called from a user gesture before the first loop
	Unlock() error

	SetBGMVolume(v float64)
	SetSFXVolume(v float64)
	ToggleBGM() bool
	ToggleSFX() bool
}

// UI receives presentation updates from the loop
type UI interface {
	UpdateStage(n int, name string)
	ShowStageCleared(clearTime time.Duration, stage int)
	DisplayLeaderboard(entries []leaderboard.Entry, loading bool)
	ShowTutorial()
	SetPaused(paused bool)
	ScoreSubmitted(ok bool)
}

// ProgressStore persists the single save slot and the tutorial flag
type ProgressStore interface {
	SaveProgress(p save.Progress) error
	LoadProgress() (save.Progress, bool)
	ClearProgress() error
	TutorialDone() bool
	SetTutorialDone(done bool) error
}

// NopAudio discards all audio calls
type NopAudio struct{}

func (NopAudio) PlayOneShot(string)   {}
func (NopAudio) PlayLoop(string)      {}
func (NopAudio) StopLoop()            {}
func (NopAudio) PauseAll()            {}
func (NopAudio) ResumeAll()           {}
func (NopAudio) Unlock() error        { return nil }
func (NopAudio) SetBGMVolume(float64) {}
func (NopAudio) SetSFXVolume(float64) {}
func (NopAudio) ToggleBGM() bool      { return false }
func (NopAudio) ToggleSFX() bool      { return false }

// NopUI discards all presentation updates
type NopUI struct{}

func (NopUI) UpdateStage(int, string)                      {}
func (NopUI) ShowStageCleared(time.Duration, int)          {}
func (NopUI) DisplayLeaderboard([]leaderboard.Entry, bool) {}
func (NopUI) ShowTutorial()                                {}
func (NopUI) SetPaused(bool)                               {}
func (NopUI) ScoreSubmitted(bool)                          {}

// MemoryProgress keeps progress in process, for tests and headless runs
type MemoryProgress struct {
	Progress    save.Progress
	HasProgress bool
	Tutorial    bool
	Saves       int // SaveProgress call count
}

func (m *MemoryProgress) SaveProgress(p save.Progress) error {
	m.Progress, m.HasProgress = p, true
	m.Saves++
	return nil
}

func (m *MemoryProgress) LoadProgress() (save.Progress, bool) {
	return m.Progress, m.HasProgress
}

func (m *MemoryProgress) ClearProgress() error {
	m.Progress, m.HasProgress = save.Progress{}, false
	return nil
}

func (m *MemoryProgress) TutorialDone() bool { return m.Tutorial }

func (m *MemoryProgress) SetTutorialDone(done bool) error {
	m.Tutorial = done
	return nil
}
