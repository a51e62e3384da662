package service

import (
	"log"

	"github.com/lixenwraith/hell-escape/audio"
	"github.com/lixenwraith/hell-escape/config"
	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/save"
)

// AudioService builds the mixer from persisted settings, falling back to config
// The output device is opened later by the first Start gesture
type AudioService struct {
	out    audio.Output
	engine *audio.AudioEngine
}

// NewAudioService creates the audio service; a nil out plays through the speaker
func NewAudioService(out audio.Output) *AudioService {
	return &AudioService{out: out}
}

func (s *AudioService) Name() string           { return NameAudio }
func (s *AudioService) Dependencies() []string { return []string{NameSave} }

func (s *AudioService) Init(cfg *config.Config, hub *Hub) error {
	if !cfg.Audio.Enabled {
		log.Printf("[service] audio disabled by config")
		return nil
	}
	store := MustGet[*SaveService](hub, NameSave).Store()

	settings, ok := store.LoadAudioSettings()
	if !ok {
		settings = save.AudioSettings{
			BGMEnabled: true,
			SFXEnabled: true,
			BGMVolume:  cfg.Audio.BGMVolume,
			SFXVolume:  cfg.Audio.SFXVolume,
		}
	}
	s.engine = audio.NewAudioEngine(settings, s.out, store)
	return nil
}

func (s *AudioService) Start() error { return nil }

func (s *AudioService) Stop() error {
	if s.engine != nil {
		s.engine.StopLoop()
		s.engine.PauseAll()
	}
	return nil
}

// Player returns the engine collaborator; a silent player when audio is disabled
func (s *AudioService) Player() engine.AudioPlayer {
	if s.engine == nil {
		return engine.NopAudio{}
	}
	return s.engine
}

// Engine returns the mixer, nil when audio is disabled
func (s *AudioService) Engine() *audio.AudioEngine {
	return s.engine
}
