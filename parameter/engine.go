package parameter

import "time"

// Frame loop
const (
	// FrameUpdateInterval is the frontend ticker period
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the initial capacity of the per-tick event queue
	EventQueueSize = 64

	// CommandQueueSize bounds work posted onto the loop goroutine from other goroutines
	CommandQueueSize = 64

	// LeaderboardTopN is how many entries are fetched for display
	LeaderboardTopN = 10

	// LeaderboardTimeout bounds a single leaderboard request
	LeaderboardTimeout = 8 * time.Second
)

// System priorities, lower runs first
const (
	PriorityPlayer    = 10
	PriorityObstacle  = 20
	PriorityCollision = 30
	PriorityCamera    = 40
	PriorityStage     = 50
	PriorityAudio     = 80
	PriorityMetrics   = 90
)

// Debug surface
const (
	// DebugStreamInterval paces the websocket position stream
	DebugStreamInterval = 100 * time.Millisecond

	// ServiceStopTimeout bounds a graceful service shutdown
	ServiceStopTimeout = 2 * time.Second
)
