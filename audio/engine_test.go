package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/save"
)

// fakeOutput captures the root stream instead of opening a device
type fakeOutput struct {
	inits int
	fail  error
	root  beep.Streamer
}

func (o *fakeOutput) Init(_ beep.SampleRate, root beep.Streamer) error {
	o.inits++
	if o.fail != nil {
		return o.fail
	}
	o.root = root
	return nil
}

func (o *fakeOutput) Lock()   {}
func (o *fakeOutput) Unlock() {}

type fakeSettingsStore struct {
	saved []save.AudioSettings
}

func (s *fakeSettingsStore) SaveAudioSettings(a save.AudioSettings) error {
	s.saved = append(s.saved, a)
	return nil
}

// loudness streams n samples and returns the peak absolute value
func loudness(s beep.Streamer, n int) float64 {
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	peak := 0.0
	for i := 0; i < got; i++ {
		peak = max(peak, abs(buf[i][0]), abs(buf[i][1]))
	}
	return peak
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func newTestEngine() (*AudioEngine, *fakeOutput, *fakeSettingsStore) {
	out := &fakeOutput{}
	store := &fakeSettingsStore{}
	return NewAudioEngine(DefaultSettings(), out, store), out, store
}

func TestPlayOneShotRequiresUnlock(t *testing.T) {
	ae, out, _ := newTestEngine()

	ae.PlayOneShot(parameter.SoundJump)
	if played, dropped := ae.GetStats(); played != 0 || dropped != 1 {
		t.Errorf("Expected 0 played 1 dropped before unlock, got %d/%d", played, dropped)
	}

	if err := ae.Unlock(); err != nil {
		t.Fatalf("Expected unlock to succeed, got %v", err)
	}
	if err := ae.Unlock(); err != nil || out.inits != 1 {
		t.Errorf("Expected repeated unlock to be a no-op, got %d inits (err %v)", out.inits, err)
	}

	ae.PlayOneShot(parameter.SoundJump)
	if played, _ := ae.GetStats(); played != 1 {
		t.Errorf("Expected 1 played, got %d", played)
	}
	if peak := loudness(out.root, 2048); peak == 0 {
		t.Error("Expected audible output after a one-shot")
	}
}

func TestUnlockFailureIsRetried(t *testing.T) {
	ae, out, _ := newTestEngine()
	out.fail = errors.New("no device")

	if err := ae.Unlock(); err == nil {
		t.Fatal("Expected unlock error")
	}
	if ae.IsUnlocked() {
		t.Error("Expected engine to stay locked after failure")
	}

	out.fail = nil
	if err := ae.Unlock(); err != nil || !ae.IsUnlocked() {
		t.Errorf("Expected retry to unlock, got %v", err)
	}
}

func TestPauseAllSilencesLoop(t *testing.T) {
	ae, out, _ := newTestEngine()
	if err := ae.Unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	ae.PlayLoop(parameter.SoundBGM)
	if ae.Loop() != parameter.SoundBGM {
		t.Errorf("Expected loop %q, got %q", parameter.SoundBGM, ae.Loop())
	}
	if loudness(out.root, 1024) == 0 {
		t.Fatal("Expected loop audible")
	}

	ae.PauseAll()
	if peak := loudness(out.root, 1024); peak != 0 {
		t.Errorf("Expected silence while paused, got peak %v", peak)
	}

	ae.ResumeAll()
	if loudness(out.root, 1024) == 0 {
		t.Error("Expected loop audible after resume")
	}

	ae.StopLoop()
	if ae.Loop() != "" {
		t.Errorf("Expected no loop after stop, got %q", ae.Loop())
	}
	if peak := loudness(out.root, 1024); peak != 0 {
		t.Errorf("Expected silence after stop, got peak %v", peak)
	}
}

func TestSettingsPersistAndGate(t *testing.T) {
	ae, out, store := newTestEngine()
	if err := ae.Unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	if ae.ToggleBGM() {
		t.Error("Expected BGM disabled after toggle")
	}
	ae.PlayLoop(parameter.SoundBGM)
	if peak := loudness(out.root, 1024); peak != 0 {
		t.Errorf("Expected disabled BGM silent, got peak %v", peak)
	}

	ae.SetSFXVolume(2)
	if v := ae.Settings().SFXVolume; v != 1 {
		t.Errorf("Expected SFX volume clamped to 1, got %v", v)
	}

	if len(store.saved) != 2 {
		t.Fatalf("Expected 2 saves, got %d", len(store.saved))
	}
	last := store.saved[1]
	if last.BGMEnabled || last.SFXVolume != 1 {
		t.Errorf("Expected saved BGM off and SFX 1, got %+v", last)
	}

	if ae.ToggleSFX() {
		t.Error("Expected SFX disabled after toggle")
	}
	ae.PlayOneShot(parameter.SoundHit)
	if played, _ := ae.GetStats(); played != 0 {
		t.Errorf("Expected disabled SFX to drop one-shots, got %d played", played)
	}
}

func TestUnknownSoundsIgnored(t *testing.T) {
	ae, _, _ := newTestEngine()
	if err := ae.Unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	ae.PlayLoop("nope")
	if ae.Loop() != "" {
		t.Errorf("Expected unknown loop ignored, got %q", ae.Loop())
	}
	ae.PlayOneShot("nope")
	if played, _ := ae.GetStats(); played != 0 {
		t.Errorf("Expected unknown one-shot ignored, got %d", played)
	}
}
