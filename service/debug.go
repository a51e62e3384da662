package service

import (
	"context"
	"fmt"

	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/debug"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/status"
)

// DebugService runs the diagnostics HTTP server when enabled
// Attach must be called with the game before StartAll
type DebugService struct {
	enabled bool
	addr    string

	game    debug.Controller
	metrics *status.Registry
	server  *debug.Server
}

// NewDebugService creates the debug service
func NewDebugService() *DebugService {
	return &DebugService{}
}

func (s *DebugService) Name() string           { return NameDebug }
func (s *DebugService) Dependencies() []string { return nil }

func (s *DebugService) Init(cfg *config.Config, _ *Hub) error {
	s.enabled = cfg.Debug.Enabled
	s.addr = cfg.Debug.Addr
	return nil
}

// Attach binds the game and metrics the server reads
func (s *DebugService) Attach(game debug.Controller, metrics *status.Registry) {
	s.game, s.metrics = game, metrics
}

func (s *DebugService) Start() error {
	if !s.enabled {
		return nil
	}
	if s.game == nil {
		return fmt.Errorf("debug service started without a game")
	}
	s.server = debug.NewServer(s.game, s.metrics, parameter.DebugStreamInterval)
	return s.server.Start(s.addr)
}

func (s *DebugService) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), parameter.ServiceStopTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.server = nil
	return err
}

// Addr returns the bound address, empty when not serving
func (s *DebugService) Addr() string {
	if s.server == nil {
		return ""
	}
	return s.server.Addr()
}
