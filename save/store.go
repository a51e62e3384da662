package save

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Slot keys, one file each under the store directory
const (
	KeyProgress      = "jumpking_save"
	KeyTutorial      = "tutorialDone"
	KeyAudioSettings = "audio_settings_v1"
)

// Progress is the single persisted run position
type Progress struct {
	Stage int     `toml:"stage"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
}

// AudioSettings are the persisted mixer preferences
type AudioSettings struct {
	BGMEnabled bool    `toml:"bgm_enabled"`
	SFXEnabled bool    `toml:"sfx_enabled"`
	BGMVolume  float64 `toml:"bgm_volume"`
	SFXVolume  float64 `toml:"sfx_volume"`
}

type tutorialDTO struct {
	Done bool `toml:"done"`
}

// Store persists slots as TOML files in one directory
// Unreadable or malformed slots read as absent
type Store struct {
	mu       sync.Mutex
	basePath string
}

// NewStore creates a store rooted at basePath; the directory is created on first write
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// FilePath returns the file backing a slot key
func (s *Store) FilePath(key string) string {
	return filepath.Join(s.basePath, key+".toml")
}

// SaveProgress writes the run position
func (s *Store) SaveProgress(p Progress) error {
	return s.write(KeyProgress, p)
}

// LoadProgress reads the run position; ok is false when missing or malformed
func (s *Store) LoadProgress() (Progress, bool) {
	var p Progress
	if !s.read(KeyProgress, &p) {
		return Progress{}, false
	}
	if p.Stage < 1 {
		log.Printf("[save] progress has invalid stage %d, ignoring", p.Stage)
		return Progress{}, false
	}
	return p, true
}

// ClearProgress removes the run position
func (s *Store) ClearProgress() error {
	return s.remove(KeyProgress)
}

// TutorialDone reports whether onboarding was completed
func (s *Store) TutorialDone() bool {
	var t tutorialDTO
	return s.read(KeyTutorial, &t) && t.Done
}

// SetTutorialDone records onboarding state
func (s *Store) SetTutorialDone(done bool) error {
	return s.write(KeyTutorial, tutorialDTO{Done: done})
}

// SaveAudioSettings writes mixer preferences
func (s *Store) SaveAudioSettings(a AudioSettings) error {
	return s.write(KeyAudioSettings, a)
}

// LoadAudioSettings reads mixer preferences; ok is false when missing or malformed
func (s *Store) LoadAudioSettings() (AudioSettings, bool) {
	var a AudioSettings
	if !s.read(KeyAudioSettings, &a) {
		return AudioSettings{}, false
	}
	a.BGMVolume = clampUnit(a.BGMVolume)
	a.SFXVolume = clampUnit(a.SFXVolume)
	return a, true
}

func (s *Store) write(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("save %s: encode: %w", key, err)
	}

	// Write then rename so a crash never leaves a truncated slot
	tmp := s.FilePath(key) + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.FilePath(key)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) read(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.FilePath(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[save] read %s: %v", key, err)
		}
		return false
	}
	if _, err := toml.Decode(string(data), v); err != nil {
		log.Printf("[save] %s is malformed, ignoring: %v", key, err)
		return false
	}
	return true
}

func (s *Store) remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.FilePath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
