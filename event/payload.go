package event

import (
	"time"

	"github.com/lixenwraith/hell-escape/component"
)

// SoundPayload names a sound effect
type SoundPayload struct {
	ID string
}

// PlayerHitPayload identifies what knocked the player back
type PlayerHitPayload struct {
	Source component.Kind
}

// ProjectilePayload identifies the spawned projectile kind
type ProjectilePayload struct {
	Kind component.Kind
}

// StageChangedPayload carries the new 1-based stage
type StageChangedPayload struct {
	Stage int
	Name  string
}

// StageClearedPayload carries the run result
type StageClearedPayload struct {
	Stage     int
	ClearTime time.Duration
}
