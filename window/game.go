// Package window is the desktop frontend: ebiten drives the loop with real key
// release and focus state, and the shared render pipeline supplies the world image
package window

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/input"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/render"
	"github.com/lixenwraith/hell-escape/render/renderers"
	"github.com/lixenwraith/hell-escape/save"
)

var _ ebiten.Game = (*Game)(nil)

// Game adapts engine.Game to ebiten.Game
type Game struct {
	game     *engine.Game
	hud      *hud
	orch     *render.RenderOrchestrator
	world    *ebiten.Image
	pixels   []byte
	bindings []keyBinding
	debug    bool

	focused bool
	quit    bool
}

// NewUI returns the windowed engine.UI; assign it to the context before Init
func NewUI(tr *i18n.Translator) engine.UI {
	return &hud{tr: tr}
}

// New wraps g; ui must be the value NewUI returned for g's context
func New(g *engine.Game, ui engine.UI, tints map[int]core.RGB, debug bool) *Game {
	h, ok := ui.(*hud)
	if !ok {
		h = &hud{tr: i18n.New("")}
		log.Printf("[window] context UI is %T, status text disabled", ui)
	}

	w, ht := parameter.WindowPixelW, parameter.WindowPixelH
	orch := render.NewRenderOrchestrator(w, ht/2)
	renderers.Install(orch, g.Context(), tints)

	return &Game{
		game:     g,
		hud:      h,
		orch:     orch,
		world:    ebiten.NewImage(w, ht),
		pixels:   make([]byte, w*ht*4),
		bindings: defaultBindings,
		debug:    debug,
		focused:  true,
	}
}

// Run opens the window and blocks until it closes
func Run(g *Game) error {
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowSize(int(parameter.CanvasWidth), int(parameter.CanvasHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if f := ebiten.IsFocused(); f != g.focused {
		g.focused = f
		if f {
			g.game.Focus()
		} else {
			g.game.Blur()
		}
	}

	in := engine.InputState{}
	if g.hud.naming {
		g.updateNaming()
	} else {
		for _, a := range pressedActions(g.bindings) {
			g.handle(a)
		}
		in = heldState(g.bindings)
	}
	if g.hud.tutorial > 0 {
		in = engine.InputState{}
	}

	g.game.SetInput(in)
	g.game.Tick(time.Now())

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateNaming() {
	g.hud.typeRunes(ebiten.AppendInputChars(nil))
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.hud.backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.game.SubmitScore(g.hud.takeName())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.hud.naming = false
	}
}

// handle runs one pressed action; held movement is read separately
func (g *Game) handle(a input.Action) {
	h := g.hud
	if h.tutorial > 0 {
		switch a {
		case input.ActionLeft:
			h.tutorialPrev()
		case input.ActionRight, input.ActionStart, input.ActionJump:
			if h.tutorialNext() {
				g.game.CompleteTutorial()
			}
		case input.ActionQuit:
			g.quit = true
		}
		return
	}

	ctx := g.game.Context()
	switch a {
	case input.ActionStart:
		g.game.Start()
	case input.ActionPause:
		g.game.TogglePause()
	case input.ActionReset:
		h.submitted, h.notice = false, ""
		g.game.Reset()
	case input.ActionSubmit:
		if ctx.State.Cleared {
			h.openNaming()
		}
	case input.ActionToggleBGM:
		ctx.Audio.ToggleBGM()
	case input.ActionToggleSFX:
		ctx.Audio.ToggleSFX()
	case input.ActionVolumeUp, input.ActionVolumeDown:
		stepVolume(ctx.Audio, a == input.ActionVolumeUp)
	case input.ActionLeaderboard:
		g.game.RefreshLeaderboard()
	case input.ActionTutorial:
		h.ShowTutorial()
	case input.ActionFrameDebug:
		g.game.ToggleFrameDebug()
	case input.ActionPrevStage, input.ActionNextStage, input.ActionGoal:
		if !g.debug {
			return
		}
		cur := ctx.State.CurrentStage
		var err error
		switch a {
		case input.ActionPrevStage:
			err = g.game.TeleportToStage(cur - 1)
		case input.ActionNextStage:
			err = g.game.TeleportToStage(cur + 1)
		default:
			err = g.game.TeleportToGoal(cur)
		}
		if err != nil {
			log.Printf("[window] %s: %v", a, err)
		}
	case input.ActionQuit:
		g.quit = true
	}
}

// stepVolume nudges both channels; players without readable settings are left alone
func stepVolume(p engine.AudioPlayer, up bool) {
	as, ok := p.(interface{ Settings() save.AudioSettings })
	if !ok {
		return
	}
	d := -parameter.VolumeStep
	if up {
		d = parameter.VolumeStep
	}
	st := as.Settings()
	p.SetBGMVolume(st.BGMVolume + d)
	p.SetSFXVolume(st.SFXVolume + d)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.orch.Compose(g.game.Context())
	g.orch.Buffer().WriteRGBA(g.pixels)
	g.world.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(parameter.WindowPixelScale, parameter.WindowPixelScale)
	screen.DrawImage(g.world, op)

	g.hud.draw(screen, g.game.Snapshot())
}

// Layout keeps the canvas at design resolution; ebiten letterboxes on resize
func (g *Game) Layout(_, _ int) (int, int) {
	return int(parameter.CanvasWidth), int(parameter.CanvasHeight)
}
