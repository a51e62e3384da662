package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/parameter"
)

// Rect is a cell rectangle on the screen
type Rect struct {
	X, Y, W, H int
}

// promptWidth is the name field width including border
const promptWidth = 44

func (s *Shell) build() {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.ContrastBackgroundColor = tcell.ColorDarkSlateGray
	tview.Styles.BorderColor = tcell.ColorDarkRed
	tview.Styles.TitleColor = tcell.ColorOrange
	tview.Styles.PrimaryTextColor = tcell.ColorWhite
	tview.Styles.SecondaryTextColor = tcell.ColorLightGray

	s.header = tview.NewTextView().SetDynamicColors(true)
	s.footer = tview.NewTextView().SetDynamicColors(true).SetTextColor(tcell.ColorGray)

	s.controls = tview.NewTextView().SetDynamicColors(true)
	s.controls.SetBorder(true).SetTitle(" " + s.tr.T(i18n.Controls) + " ")
	s.controls.SetText(s.controlsText())

	s.board = tview.NewTable().SetBorders(false)
	s.board.SetBorder(true).SetTitle(" " + s.tr.T(i18n.Leaderboard) + " ")

	s.sound = tview.NewTextView().SetDynamicColors(true)
	s.sound.SetBorder(true).SetTitle(" " + s.tr.T(i18n.SoundTitle) + " ")

	s.message = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(true)
	s.message.SetBorder(true)

	s.sidebar = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.controls, 9, 0, false).
		AddItem(s.board, 0, 2, false).
		AddItem(s.sound, 4, 0, false).
		AddItem(s.message, 0, 1, false)

	s.prompt = tview.NewInputField().
		SetFieldWidth(0).
		SetAcceptanceFunc(tview.InputFieldMaxLength(20))
	s.prompt.SetBorder(true).SetTitle(" " + s.tr.T(i18n.Leaderboard) + " ")
	s.prompt.SetDoneFunc(s.promptDone)

	s.refreshBoard()
}

func (s *Shell) controlsText() string {
	rows := []struct {
		keys string
		key  i18n.Key
	}{
		{"← → / A D", i18n.ControlsMove},
		{"Space / ↑", i18n.ControlsJump},
		{"P / Esc", i18n.ControlsPause},
		{"R", i18n.ControlsReset},
		{"M / N", i18n.ControlsSound},
		{"Ctrl-Q", i18n.ControlsQuit},
	}
	if s.debug {
		rows = append(rows, struct {
			keys string
			key  i18n.Key
		}{"G / PgUp PgDn", i18n.ControlsGoal})
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "[yellow]%-13s[-] %s\n", r.keys, s.tr.T(r.key))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Shell) refreshBoard() {
	s.board.Clear()
	switch {
	case s.loading:
		s.board.SetCell(0, 0, tview.NewTableCell(s.tr.T(i18n.LeaderboardLoading)).SetTextColor(tcell.ColorGray))
	case len(s.entries) == 0:
		s.board.SetCell(0, 0, tview.NewTableCell(s.tr.T(i18n.LeaderboardEmpty)).SetTextColor(tcell.ColorGray))
	default:
		for i, e := range s.entries {
			color := tcell.ColorWhite
			if i == 0 {
				color = tcell.ColorGold
			}
			s.board.SetCell(i, 0, tview.NewTableCell(fmt.Sprintf("%2d.", i+1)).SetTextColor(tcell.ColorGray))
			s.board.SetCell(i, 1, tview.NewTableCell(tview.Escape(e.Name)).SetTextColor(color).SetExpansion(1))
			s.board.SetCell(i, 2, tview.NewTableCell(fmt.Sprintf("%.2fs", float64(e.Time)/1000)).
				SetTextColor(color).SetAlign(tview.AlignRight))
		}
	}
}

// Layout returns the game area for a w x h screen
// The sidebar is dropped on screens too narrow to hold it next to a usable game area
func (s *Shell) Layout(w, h int) Rect {
	game := Rect{X: 0, Y: parameter.HeaderHeight, W: w, H: max(0, h-parameter.HeaderHeight-parameter.FooterHeight)}
	if w >= parameter.SidebarWidth*2 {
		game.W = w - parameter.SidebarWidth
	}
	return game
}

// Draw renders header, sidebar, footer and any modal around the game area
// The game area itself is flushed by the render orchestrator
func (s *Shell) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	game := s.Layout(w, h)

	s.header.SetText(s.headerText())
	s.header.SetRect(0, 0, w, parameter.HeaderHeight)
	s.header.Draw(screen)

	s.footer.SetText(s.footerText())
	s.footer.SetRect(0, h-parameter.FooterHeight, w, parameter.FooterHeight)
	s.footer.Draw(screen)

	if game.W < w {
		s.message.SetTitle(s.messageTitle())
		s.message.SetText(s.messageText())
		s.sidebar.SetRect(game.W, game.Y, w-game.W, game.H)
		s.sidebar.Draw(screen)
	}

	if s.prompting {
		pw := min(promptWidth, game.W)
		s.prompt.SetRect(game.X+(game.W-pw)/2, game.Y+game.H/2-1, pw, 3)
		s.prompt.Draw(screen)
	}
}

func (s *Shell) headerText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red::b]%s[-::-]  %s", s.tr.T(i18n.Title), tview.Escape(s.tr.T(i18n.StageLabel, s.stageNum, s.stageName)))
	if s.game != nil {
		snap := s.game.Snapshot()
		switch {
		case snap.Cleared:
			fmt.Fprintf(&b, "  [gold]%s[-]", s.tr.T(i18n.ClearedLabel, s.clearTime.Seconds()))
		case snap.Running:
			fmt.Fprintf(&b, "  %.2fs", float64(snap.ElapsedMs)/1000)
		}
	}
	if s.paused {
		fmt.Fprintf(&b, "  [yellow::b]%s[-::-]", s.tr.T(i18n.Paused))
	}
	return b.String()
}

func (s *Shell) footerText() string {
	if s.tutorial > 0 {
		return fmt.Sprintf("←/→ %s / %s   Enter %s", s.tr.T(i18n.TutorialPrev), s.tr.T(i18n.TutorialNext), s.tr.T(i18n.TutorialFinish))
	}
	if s.game != nil && !s.game.Snapshot().Running {
		return s.tr.T(i18n.TutorialStart)
	}
	return ""
}

func (s *Shell) messageTitle() string {
	if s.tutorial > 0 {
		return fmt.Sprintf(" %d/%d ", s.tutorial, len(tutorialSteps))
	}
	return ""
}

func (s *Shell) messageText() string {
	if s.tutorial > 0 {
		step := tutorialSteps[s.tutorial-1]
		return "[orange::b]" + tview.Escape(s.tr.T(step.Title)) + "[-::-]\n" + tview.Escape(s.tr.T(step.Desc))
	}
	return tview.Escape(s.notice)
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}
