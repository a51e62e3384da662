package leaderboard

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxNameLen bounds player names accepted for submission
const MaxNameLen = 20

// Entry is one leaderboard record; Time is the clear time in milliseconds
type Entry struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	Time      int64  `json:"time"`
	Stage     int    `json:"stage"`
	Timestamp int64  `json:"timestamp"`
}

// Client is the leaderboard collaborator
// Failures are reported as false or an empty list; there is no retry
type Client interface {
	Submit(ctx context.Context, name string, clearTimeMs int64, stage int) bool
	FetchTop(ctx context.Context, n int) []Entry
}

// SortByTime orders entries fastest first, older submissions winning ties
func SortByTime(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Time != entries[j].Time {
			return entries[i].Time < entries[j].Time
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}

// CleanName trims and truncates a submitted name; ok is false when nothing remains
func CleanName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name, true
}

// Disabled is the collaborator used when no backend is configured
type Disabled struct{}

func (Disabled) Submit(context.Context, string, int64, int) bool { return false }
func (Disabled) FetchTop(context.Context, int) []Entry           { return nil }
