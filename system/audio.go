package system

import (
	"time"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/event"
	"github.com/lixenwraith/hell-escape/parameter"
)

// AudioSystem forwards sound requests to the audio player
type AudioSystem struct {
	ctx *engine.GameContext
}

// NewAudioSystem creates the sound request handler
func NewAudioSystem(ctx *engine.GameContext) *AudioSystem {
	return &AudioSystem{ctx: ctx}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update(_ time.Duration) {
	// No-op: playback is driven by events
}

// EventTypes returns events this system handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays the requested effect
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SoundPayload); ok {
		s.ctx.Audio.PlayOneShot(p.ID)
	}
}
