package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops while paused
// Run time (Elapsed) is measured from the last Restart and excludes every pause since
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	startTime time.Time // Real time of the last Restart

	paused      bool
	pauseStart  time.Time     // Real time the current pause began
	totalPaused time.Duration // Pauses accumulated since Restart
}

// NewPausableClock creates a running clock reading from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Restart zeroes elapsed time and clears the pause state
func (pc *PausableClock) Restart() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.startTime = pc.provider.Now()
	pc.paused = false
	pc.pauseStart = time.Time{}
	pc.totalPaused = 0
}

// Elapsed returns game time since Restart, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	ref := pc.provider.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return ref.Sub(pc.startTime) - pc.totalPaused
}

// Now returns the current game time; emitters compare against it
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.startTime.Add(pc.elapsedLocked())
}

// RealTime returns the provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues game time advancement; no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time since Restart, including a pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
