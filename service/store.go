package service

import (
	"log"

	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/save"
)

// Service names
const (
	NameSave        = "save"
	NameAudio       = "audio"
	NameLeaderboard = "leaderboard"
	NameDebug       = "debug"
)

// SaveService owns the on-disk slot store
type SaveService struct {
	store *save.Store
}

// NewSaveService creates the persistence service
func NewSaveService() *SaveService {
	return &SaveService{}
}

func (s *SaveService) Name() string           { return NameSave }
func (s *SaveService) Dependencies() []string { return nil }

func (s *SaveService) Init(cfg *config.Config, _ *Hub) error {
	s.store = save.NewStore(cfg.Paths.Saves)
	log.Printf("[service] saves under %s", cfg.Paths.Saves)
	return nil
}

func (s *SaveService) Start() error { return nil }
func (s *SaveService) Stop() error  { return nil }

// Store returns the slot store, nil before Init
func (s *SaveService) Store() *save.Store {
	return s.store
}
