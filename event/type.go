package event

// EventType represents the type of game event
type EventType int

const (
	// EventSoundRequest requests a one-shot sound effect
	// Trigger: Player jump, collisions | Consumer: AudioSystem | Payload: *SoundPayload
	EventSoundRequest EventType = iota

	// EventPlayerHit reports a knockback
	// Trigger: CollisionSystem | Consumer: MetricsSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventProjectileSpawned reports a cannon shot
	// Trigger: ObstacleSystem | Consumer: MetricsSystem | Payload: *ProjectilePayload
	EventProjectileSpawned

	// EventStageChanged reports a change of detected stage
	// Trigger: Game.SetStage | Consumer: MetricsSystem | Payload: *StageChangedPayload
	EventStageChanged

	// EventStageCleared reports the goal was reached
	// Trigger: Game clear latch | Consumer: MetricsSystem | Payload: *StageClearedPayload
	EventStageCleared
)

var typeNames = map[EventType]string{
	EventSoundRequest:      "SoundRequest",
	EventPlayerHit:         "PlayerHit",
	EventProjectileSpawned: "ProjectileSpawned",
	EventStageChanged:      "StageChanged",
	EventStageCleared:      "StageCleared",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// GameEvent is a routed notification with a typed payload
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick on which the event was pushed
}
