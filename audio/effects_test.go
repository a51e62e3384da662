package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hell-escape/parameter"
)

// drain streams s to exhaustion, returning samples produced, capped at limit
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return total
}

func TestOscillatorRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewSweep(220, 880, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
				t.Errorf("Wave %d sample %d out of range or not mono: %v", wave, i, samples[i])
			}
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got %v", osc.Err())
		}
	}

	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if n := drain(osc, rate.N(time.Second)); n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %v", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %v", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade, got %v then %v", samples[90][0], samples[99][0])
	}
}

func TestSoundEffectsDrain(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	for _, id := range []string{parameter.SoundJump, parameter.SoundHit, parameter.SoundSpring, parameter.SoundClear} {
		s := GetSoundEffect(id, rate)
		if s == nil {
			t.Fatalf("Expected effect for %q", id)
		}
		if n := drain(s, rate.N(2*time.Second)); n == 0 || n >= rate.N(2*time.Second) {
			t.Errorf("Expected %q to end within 2s, streamed %d samples", id, n)
		}
	}
	if GetSoundEffect("missing", rate) != nil {
		t.Error("Expected nil for unknown effect")
	}
}

func TestBGMNeverDrains(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewBGM(parameter.SoundBGM, rate)
	if s == nil {
		t.Fatal("Expected background loop")
	}
	limit := rate.N(5 * time.Second)
	if n := drain(s, limit); n < limit {
		t.Errorf("Expected endless loop, drained after %d samples", n)
	}
	if NewBGM("missing", rate) != nil {
		t.Error("Expected nil for unknown loop")
	}
}
