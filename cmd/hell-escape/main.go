package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/app"
	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/input"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/render"
	"github.com/lixenwraith/hell-escape/render/renderers"
	"github.com/lixenwraith/hell-escape/ui"
)

var (
	configFlag = flag.String("config", "", "TOML config file (default ./"+config.DefaultFileName+" if present)")
	envFlag    = flag.String("env", config.DefaultEnvFile, "dotenv file merged under the environment")
	debugFlag  = flag.Bool("debug", false, "Enable the debug log, stage jump keys and the debug HTTP server")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug.Enabled = true
		cfg.Debug.Log = true
	}
	if cfg.Locale == "" {
		cfg.Locale = config.LocaleFromEnv(os.Getenv("LANG"))
	}

	if f := setupLogging(cfg.Debug.Log); f != nil {
		defer f.Close()
	}
	defer func() { core.HandleCrash(recover()) }()

	keys := input.LoadKeyTable(cfg.Input.Keymap)
	hold := input.NewHoldTracker(cfg.Input.HoldInitial(), cfg.Input.HoldRepeat())

	var shell *ui.Shell
	a, err := app.New(cfg, func(tr *i18n.Translator) engine.UI {
		shell = ui.NewShell(tr, keys, hold, cfg.Debug.Enabled)
		return shell
	}, app.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape: %v\n", err)
		os.Exit(1)
	}
	shell.Bind(a.Game)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape: terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape: terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableFocus()
	screen.HideCursor()

	if err := a.Start(); err != nil {
		log.Printf("[main] services: %v", err)
		return
	}
	defer a.Close()

	run(screen, shell, a)
}

// run owns the game until quit: terminal events feed the shell, the ticker advances and draws
func run(screen tcell.Screen, shell *ui.Shell, a *app.App) {
	ctx := a.Game.Context()
	w, h := screen.Size()
	area := shell.Layout(w, h)
	orch := render.NewRenderOrchestrator(area.W, area.H)
	renderers.Install(orch, ctx, a.Tints)

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if rs, ok := ev.(*tcell.EventResize); ok {
				w, h = rs.Size()
				area = shell.Layout(w, h)
				orch.Resize(area.W, area.H)
				screen.Sync()
				continue
			}
			if !shell.HandleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			shell.Frame(now)
			screen.Clear()
			orch.RenderFrame(ctx, screen, area.X, area.Y)
			shell.Draw(screen)
			screen.Show()
		}
	}
}
