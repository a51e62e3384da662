package audio

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/save"
)

// ErrUnknownSound is logged when an id has no generator
var ErrUnknownSound = errors.New("unknown sound id")

var _ engine.AudioPlayer = (*AudioEngine)(nil)

// Output is the device the mixed stream plays on
// Lock/Unlock guard streamer mutation against the device goroutine
type Output interface {
	Init(rate beep.SampleRate, root beep.Streamer) error
	Lock()
	Unlock()
}

// SpeakerOutput plays through the system speaker
type SpeakerOutput struct{}

func (SpeakerOutput) Init(rate beep.SampleRate, root beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferMs*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(root)
	return nil
}

func (SpeakerOutput) Lock()   { speaker.Lock() }
func (SpeakerOutput) Unlock() { speaker.Unlock() }

// SettingsStore persists mixer preferences
type SettingsStore interface {
	SaveAudioSettings(save.AudioSettings) error
}

// DefaultSettings returns both channels enabled at default levels
func DefaultSettings() save.AudioSettings {
	return save.AudioSettings{
		BGMEnabled: true,
		SFXEnabled: true,
		BGMVolume:  parameter.AudioDefaultBGM,
		SFXVolume:  parameter.AudioDefaultSFX,
	}
}

// AudioEngine mixes one-shot effects and a single background loop
// The device opens on Unlock, which must come from a user gesture
type AudioEngine struct {
	mu sync.Mutex

	rate  beep.SampleRate
	out   Output
	store SettingsStore

	settings save.AudioSettings

	root   *beep.Ctrl // Pauses everything
	sfx    *beep.Mixer
	bgm    *beep.Mixer
	sfxVol *effects.Volume
	bgmVol *effects.Volume
	loopID string

	unlocked atomic.Bool
	played   atomic.Uint64
	dropped  atomic.Uint64
}

// NewAudioEngine builds the mixer graph; nothing plays until Unlock
// A nil out uses the speaker, a nil store skips persistence
func NewAudioEngine(settings save.AudioSettings, out Output, store SettingsStore) *AudioEngine {
	if out == nil {
		out = SpeakerOutput{}
	}
	ae := &AudioEngine{
		rate:     beep.SampleRate(parameter.AudioSampleRate),
		out:      out,
		store:    store,
		settings: settings,
		sfx:      &beep.Mixer{},
		bgm:      &beep.Mixer{},
	}
	ae.sfxVol = newVolume(ae.sfx, 0)
	ae.bgmVol = newVolume(ae.bgm, 0)
	ae.applyGain()

	master := &beep.Mixer{}
	master.Add(ae.sfxVol, ae.bgmVol)
	ae.root = &beep.Ctrl{Streamer: master}
	return ae
}

// Unlock opens the output device; safe to call repeatedly
func (ae *AudioEngine) Unlock() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.unlocked.Load() {
		return nil
	}
	if err := ae.out.Init(ae.rate, ae.root); err != nil {
		return err
	}
	ae.unlocked.Store(true)
	log.Printf("[audio] output unlocked at %d Hz", ae.rate)
	return nil
}

// PlayOneShot starts an effect; dropped while locked or with effects disabled
func (ae *AudioEngine) PlayOneShot(id string) {
	if !ae.unlocked.Load() || !ae.Settings().SFXEnabled {
		ae.dropped.Add(1)
		return
	}
	s := GetSoundEffect(id, ae.rate)
	if s == nil {
		log.Printf("[audio] %v: %q", ErrUnknownSound, id)
		return
	}

	ae.out.Lock()
	ae.sfx.Add(s)
	ae.out.Unlock()
	ae.played.Add(1)
}

// PlayLoop replaces the background loop
func (ae *AudioEngine) PlayLoop(id string) {
	s := NewBGM(id, ae.rate)
	if s == nil {
		log.Printf("[audio] %v: %q", ErrUnknownSound, id)
		return
	}

	ae.mu.Lock()
	ae.loopID = id
	ae.mu.Unlock()

	ae.out.Lock()
	ae.bgm.Clear()
	ae.bgm.Add(s)
	ae.out.Unlock()
}

// StopLoop silences the background loop
func (ae *AudioEngine) StopLoop() {
	ae.mu.Lock()
	ae.loopID = ""
	ae.mu.Unlock()

	ae.out.Lock()
	ae.bgm.Clear()
	ae.out.Unlock()
}

// PauseAll freezes every playing stream in place
func (ae *AudioEngine) PauseAll() {
	ae.out.Lock()
	ae.root.Paused = true
	ae.out.Unlock()
}

// ResumeAll continues paused streams
func (ae *AudioEngine) ResumeAll() {
	ae.out.Lock()
	ae.root.Paused = false
	ae.out.Unlock()
}

// SetBGMVolume sets the loop level (0..1) and persists it
func (ae *AudioEngine) SetBGMVolume(v float64) {
	ae.update(func(s *save.AudioSettings) { s.BGMVolume = clampUnit(v) })
}

// SetSFXVolume sets the effect level (0..1) and persists it
func (ae *AudioEngine) SetSFXVolume(v float64) {
	ae.update(func(s *save.AudioSettings) { s.SFXVolume = clampUnit(v) })
}

// ToggleBGM flips the loop channel, returns true if now enabled
func (ae *AudioEngine) ToggleBGM() bool {
	return ae.update(func(s *save.AudioSettings) { s.BGMEnabled = !s.BGMEnabled }).BGMEnabled
}

// ToggleSFX flips the effect channel, returns true if now enabled
func (ae *AudioEngine) ToggleSFX() bool {
	return ae.update(func(s *save.AudioSettings) { s.SFXEnabled = !s.SFXEnabled }).SFXEnabled
}

// Settings returns the current preferences
func (ae *AudioEngine) Settings() save.AudioSettings {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.settings
}

// Loop returns the id of the playing background loop, empty if none
func (ae *AudioEngine) Loop() string {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.loopID
}

// IsUnlocked reports whether the device is open
func (ae *AudioEngine) IsUnlocked() bool {
	return ae.unlocked.Load()
}

// GetStats returns played and dropped one-shot counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

// Root exposes the mixed stream, used when the host owns the device
func (ae *AudioEngine) Root() beep.Streamer {
	return ae.root
}

func (ae *AudioEngine) update(fn func(*save.AudioSettings)) save.AudioSettings {
	ae.mu.Lock()
	fn(&ae.settings)
	s := ae.settings
	ae.mu.Unlock()

	ae.out.Lock()
	ae.applyGain()
	ae.out.Unlock()

	if ae.store != nil {
		if err := ae.store.SaveAudioSettings(s); err != nil {
			log.Printf("[audio] settings not saved: %v", err)
		}
	}
	return s
}

// applyGain maps settings onto the channel volumes; caller holds the output lock
func (ae *AudioEngine) applyGain() {
	ae.mu.Lock()
	s := ae.settings
	ae.mu.Unlock()

	sfx, bgm := s.SFXVolume, s.BGMVolume
	if !s.SFXEnabled {
		sfx = 0
	}
	if !s.BGMEnabled {
		bgm = 0
	}
	setGain(ae.sfxVol, sfx)
	setGain(ae.bgmVol, bgm)
}

func clampUnit(v float64) float64 {
	return min(1, max(0, v))
}
