package window

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/leaderboard"
	"github.com/lixenwraith/hell-escape/parameter"
)

var _ engine.UI = (*hud)(nil)

// hud is the windowed engine.UI: text panels printed over the scaled world
type hud struct {
	tr *i18n.Translator

	stageNum  int
	stageName string
	paused    bool
	clearTime time.Duration
	entries   []leaderboard.Entry
	loading   bool
	notice    string
	tutorial  int

	naming    bool
	name      []rune
	submitted bool
}

func (h *hud) UpdateStage(n int, name string) {
	h.stageNum, h.stageName = n, name
}

func (h *hud) ShowStageCleared(clearTime time.Duration, stage int) {
	h.clearTime = clearTime
	h.submitted = false
	h.notice = h.tr.T(i18n.ClearedPrompt, stage, clearTime.Seconds())
	h.openNaming()
	log.Printf("[window] stage %d cleared in %v", stage, clearTime)
}

func (h *hud) DisplayLeaderboard(entries []leaderboard.Entry, loading bool) {
	h.entries, h.loading = entries, loading
}

func (h *hud) ShowTutorial() { h.tutorial = 1 }

func (h *hud) SetPaused(paused bool) { h.paused = paused }

func (h *hud) ScoreSubmitted(ok bool) {
	if ok {
		h.submitted = true
		h.notice = h.tr.T(i18n.Saved)
		return
	}
	h.notice = h.tr.T(i18n.SaveFailed)
}

func (h *hud) openNaming() {
	if h.submitted {
		return
	}
	h.naming = true
	h.name = []rune(h.tr.T(i18n.DefaultName))
}

func (h *hud) typeRunes(rs []rune) {
	for _, r := range rs {
		if len(h.name) < leaderboard.MaxNameLen && r >= ' ' {
			h.name = append(h.name, r)
		}
	}
}

func (h *hud) backspace() {
	if len(h.name) > 0 {
		h.name = h.name[:len(h.name)-1]
	}
}

// takeName closes the prompt and returns the name to submit
func (h *hud) takeName() string {
	h.naming = false
	name, ok := leaderboard.CleanName(string(h.name))
	if !ok {
		return h.tr.T(i18n.DefaultName)
	}
	return name
}

func (h *hud) tutorialNext() bool {
	if h.tutorial < len(i18n.TutorialSteps) {
		h.tutorial++
		return false
	}
	h.tutorial = 0
	return true
}

func (h *hud) tutorialPrev() {
	if h.tutorial > 1 {
		h.tutorial--
	}
}

var panelColor = color.RGBA{0, 0, 0, 0xb0}

// draw prints the header, leaderboard and any modal text
func (h *hud) draw(screen *ebiten.Image, snap engine.Snapshot) {
	line := parameter.WindowLineHeight

	header := h.tr.T(i18n.Title) + "  " + h.tr.T(i18n.StageLabel, h.stageNum, h.stageName)
	switch {
	case snap.Cleared:
		header += "  " + h.tr.T(i18n.ClearedLabel, h.clearTime.Seconds())
	case snap.Running:
		header += fmt.Sprintf("  %.2fs", float64(snap.ElapsedMs)/1000)
	}
	if h.paused {
		header += "  " + h.tr.T(i18n.Paused)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(line+4), panelColor, false)
	ebitenutil.DebugPrintAt(screen, header, 8, 2)

	// Leaderboard, top right
	x := screen.Bounds().Dx() - 260
	y := line * 2
	ebitenutil.DebugPrintAt(screen, h.tr.T(i18n.Leaderboard), x, y)
	switch {
	case h.loading:
		ebitenutil.DebugPrintAt(screen, h.tr.T(i18n.LeaderboardLoading), x, y+line)
	case len(h.entries) == 0:
		ebitenutil.DebugPrintAt(screen, h.tr.T(i18n.LeaderboardEmpty), x, y+line)
	default:
		for i, e := range h.entries {
			row := h.tr.T(i18n.LeaderboardRow, i+1, e.Name, float64(e.Time)/1000)
			ebitenutil.DebugPrintAt(screen, row, x, y+line*(i+1))
		}
	}

	if !snap.Running && h.tutorial == 0 && !h.naming {
		ebitenutil.DebugPrintAt(screen, h.tr.T(i18n.TutorialStart), 8, screen.Bounds().Dy()-line-4)
	}

	var body string
	switch {
	case h.tutorial > 0:
		step := i18n.TutorialSteps[h.tutorial-1]
		body = fmt.Sprintf("%s (%d/%d)\n%s", h.tr.T(step.Title), h.tutorial, len(i18n.TutorialSteps), h.tr.T(step.Desc))
	case h.naming:
		body = h.notice + "\n> " + string(h.name) + "_"
	case h.notice != "":
		body = h.notice
	default:
		return
	}
	h.modal(screen, body)
}

// modal prints text in a dimmed box centred on the screen
func (h *hud) modal(screen *ebiten.Image, body string) {
	w, hgt := 520, parameter.WindowLineHeight*5
	b := screen.Bounds()
	x, y := (b.Dx()-w)/2, (b.Dy()-hgt)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(hgt), panelColor, false)
	ebitenutil.DebugPrintAt(screen, body, x+12, y+8)
}
