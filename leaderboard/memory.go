package leaderboard

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process, for the self-hosted server
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Add stores e under a fresh id and returns the id
func (s *MemoryStore) Add(e Entry) string {
	id := uuid.NewString()
	e.ID = id

	s.mu.Lock()
	s.entries[id] = e
	s.mu.Unlock()
	return id
}

// Top returns up to n entries ordered by ascending time
func (s *MemoryStore) Top(n int) []Entry {
	s.mu.RLock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.RUnlock()

	SortByTime(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of stored entries
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
