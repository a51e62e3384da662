// Package app assembles configuration, services, stage assets and the engine
// into a game both frontends can drive
package app

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/hell-escape/asset"
	"github.com/lixenwraith/hell-escape/audio"
	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/i18n"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/service"
	"github.com/lixenwraith/hell-escape/stage"
	"github.com/lixenwraith/hell-escape/system"
)

// MapsDir holds stage descriptors under the assets root
const MapsDir = "maps"

// UIFactory builds the frontend's engine.UI once the translator is known
type UIFactory func(tr *i18n.Translator) engine.UI

// Options override runtime collaborators, mainly for tests
type Options struct {
	Output audio.Output        // Nil plays through the speaker
	Time   engine.TimeProvider // Nil uses the monotonic clock
}

// App is a wired game with its services
type App struct {
	Config     config.Config
	Translator *i18n.Translator
	Hub        *service.Hub
	Game       *engine.Game
	Tints      map[int]core.RGB

	Audio *service.AudioService
	Debug *service.DebugService
}

// New initializes services, loads the stages and builds the game
// Services are initialized but not started; call Start before the first tick
func New(cfg config.Config, newUI UIFactory, opts Options) (*App, error) {
	a := &App{
		Config:     cfg,
		Translator: i18n.New(cfg.Locale),
		Hub:        service.NewHub(),
		Audio:      service.NewAudioService(opts.Output),
		Debug:      service.NewDebugService(),
	}
	saves := service.NewSaveService()
	board := service.NewLeaderboardService()

	for _, svc := range []service.Service{saves, a.Audio, board, a.Debug} {
		if err := a.Hub.Register(svc); err != nil {
			return nil, err
		}
	}
	if err := a.Hub.InitAll(&a.Config); err != nil {
		return nil, err
	}

	ctx := engine.NewGameContext(opts.Time)
	ctx.Tuning = cfg.Physics
	ctx.Audio = a.Audio.Player()
	ctx.Store = saves.Store()
	ctx.Board = board.Client()
	if newUI != nil {
		ctx.UI = newUI(a.Translator)
	}

	layout, _ := stage.LoadLayout(os.DirFS(filepath.Join(cfg.Paths.Assets, MapsDir)), parameter.MaxStages)
	if err := ctx.Init(layout); err != nil {
		a.Hub.StopAll()
		return nil, fmt.Errorf("app: %w", err)
	}

	a.Game = engine.NewGame(ctx)
	system.Install(a.Game)
	a.Tints = LoadTints(os.DirFS(cfg.Paths.Assets), layout)
	a.Debug.Attach(a.Game, ctx.Status)
	return a, nil
}

// Start launches services, restores the saved position, offers the tutorial
// and fetches the leaderboard
func (a *App) Start() error {
	if err := a.Hub.StartAll(); err != nil {
		return err
	}
	if a.Game.RestoreProgress() {
		log.Printf("[app] resumed saved run")
	}
	a.Game.MaybeShowTutorial()
	a.Game.RefreshLeaderboard()
	return nil
}

// Close stops the game and every started service
func (a *App) Close() {
	a.Game.Context().Shutdown()
	a.Hub.StopAll()
}

// LoadTints averages the first background layer of each stage into a tint
// Stages whose image fails to load get no tint
func LoadTints(fsys fs.FS, layout *stage.Layout) map[int]core.RGB {
	tints := make(map[int]core.RGB)
	var results []asset.Result[image.Image]

	for _, st := range layout.Stages {
		if len(st.Backgrounds) == 0 {
			continue
		}
		r := asset.LoadImage(fsys, st.Backgrounds[0].Path)
		results = append(results, r)
		if !r.OK() {
			continue
		}
		tints[st.Index] = core.FromColor(asset.AverageColor(r.Value))
	}
	asset.LogResults("background", results)
	return tints
}
