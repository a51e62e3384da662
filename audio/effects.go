package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hell-escape/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 && o.endFreq != o.freq {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent
// math.Log2(0) is -Inf, so silence is a flag rather than a level
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

// shaped is an enveloped tone with short fixed attack
func shaped(osc beep.Streamer, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, d, 5*time.Millisecond, release, rate)
}

// CreateJumpSound is a rising square chirp
func CreateJumpSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return newVolume(shaped(NewSweep(300, 650, d, WaveSquare, rate), d, 60*time.Millisecond, rate), 0.35)
}

// CreateHitSound is a noise burst over a low saw thud
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d := 160 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(NewOscillator(0, d, WaveNoise, rate), d, 120*time.Millisecond, rate), 0.4),
		newVolume(shaped(NewSweep(140, 70, d, WaveSaw, rate), d, 100*time.Millisecond, rate), 0.5),
	)
}

// CreateSpringSound is a fast sine glide upward
func CreateSpringSound(rate beep.SampleRate) beep.Streamer {
	d := 220 * time.Millisecond
	return newVolume(shaped(NewSweep(400, 1300, d, WaveSine, rate), d, 80*time.Millisecond, rate), 0.6)
}

// CreateClearSound is a major arpeggio (C6, E6, G6)
func CreateClearSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		return shaped(NewOscillator(freq, d, WaveSine, rate), d, d/2, rate)
	}
	return newVolume(beep.Seq(
		note(1046.50, 120*time.Millisecond),
		note(1318.51, 120*time.Millisecond),
		note(1567.98, 360*time.Millisecond),
	), 0.7)
}

// GetSoundEffect returns a fresh streamer for a one-shot id, nil if unknown
func GetSoundEffect(id string, rate beep.SampleRate) beep.Streamer {
	switch id {
	case parameter.SoundJump:
		return CreateJumpSound(rate)
	case parameter.SoundHit:
		return CreateHitSound(rate)
	case parameter.SoundSpring:
		return CreateSpringSound(rate)
	case parameter.SoundClear:
		return CreateClearSound(rate)
	}
	return nil
}

// bgmPattern is a descending minor bass line in Hz, one entry per step
var bgmPattern = [...]float64{110.00, 130.81, 164.81, 130.81, 98.00, 116.54, 146.83, 116.54}

// bgm is an endless generated loop; it never drains
type bgm struct {
	rate     beep.SampleRate
	step     int
	stepLen  int
	position int
	phase    float64
}

// NewBGM creates the background loop for id, nil if unknown
func NewBGM(id string, rate beep.SampleRate) beep.Streamer {
	if id != parameter.SoundBGM {
		return nil
	}
	return &bgm{rate: rate, stepLen: rate.N(250 * time.Millisecond)}
}

func (b *bgm) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := bgmPattern[b.step]
		// Per-step decay gives each note a pluck
		decay := 1 - float64(b.position)/float64(b.stepLen)
		val := (sample(WaveSaw, b.phase)*0.6 + sample(WaveSine, b.phase*2)*0.4) * decay * 0.5

		samples[i][0] = val
		samples[i][1] = val

		b.phase += freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
		if b.position >= b.stepLen {
			b.position = 0
			b.step = (b.step + 1) % len(bgmPattern)
		}
	}
	return len(samples), true
}

func (b *bgm) Err() error { return nil }
