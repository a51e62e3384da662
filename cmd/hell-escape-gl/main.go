package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/hell-escape/app"
	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/window"
)

var (
	configFlag = flag.String("config", "", "TOML config file (default ./"+config.DefaultFileName+" if present)")
	envFlag    = flag.String("env", config.DefaultEnvFile, "dotenv file merged under the environment")
	debugFlag  = flag.Bool("debug", false, "Enable stage jump keys and the debug HTTP server")
)

func main() {
	flag.Parse()
	defer func() { core.HandleCrash(recover()) }()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape-gl: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug.Enabled = true
	}
	if cfg.Locale == "" {
		cfg.Locale = config.LocaleFromEnv(os.Getenv("LANG"))
	}
	// A window leaves the terminal free for logs
	if !cfg.Debug.Log && !cfg.Debug.Enabled {
		log.SetOutput(io.Discard)
	}

	a, err := app.New(cfg, window.NewUI, app.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape-gl: %v\n", err)
		os.Exit(1)
	}
	if err := a.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "hell-escape-gl: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	g := window.New(a.Game, a.Game.Context().UI, a.Tints, cfg.Debug.Enabled)
	if err := window.Run(g); err != nil {
		log.Printf("[main] window: %v", err)
	}
}
