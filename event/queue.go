package event

import (
	"sync"

	"github.com/lixenwraith/hell-escape/parameter"
)

// EventQueue buffers events for the dispatch phase at the end of a tick
// Push is safe from any goroutine; Consume is called by the loop only
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	spare  []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:  make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	out := eq.events
	eq.events = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
