package status

import (
	"testing"
	"unicode/utf8"
)

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrameCount).Store(42)
	r.Floats.Get(KeyFrameFPS).Store(59.5)
	r.Strings.Get(KeyStageName).Store("Lava Pit")
	r.Bools.Get(KeyRunning).Store(true)

	if r.Ints.Get(KeyFrameCount) != r.Ints.Get(KeyFrameCount) {
		t.Error("Expected cached pointer on repeated Get")
	}

	snap := r.Snapshot()
	if len(snap) != 4 || r.TotalCount() != 4 {
		t.Fatalf("Expected 4 metrics, got %d (total %d)", len(snap), r.TotalCount())
	}
	if snap[KeyFrameCount] != int64(42) {
		t.Errorf("Expected frame count 42, got %v", snap[KeyFrameCount])
	}
	if snap[KeyFrameFPS] != 59.5 {
		t.Errorf("Expected fps 59.5, got %v", snap[KeyFrameFPS])
	}
	if snap[KeyStageName] != "Lava Pit" {
		t.Errorf("Expected stage name, got %v", snap[KeyStageName])
	}
	if snap[KeyRunning] != true {
		t.Errorf("Expected running true, got %v", snap[KeyRunning])
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	s.Store(long)
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(got))
	}
}

func TestAtomicStringKeepsRunes(t *testing.T) {
	var s AtomicString
	// 14 three-byte runes; a 40 byte cut would land mid-rune
	s.Store("지옥탈출지옥탈출지옥탈출지옥")
	got := s.Load()
	if len(got) != 39 {
		t.Errorf("Expected cut back to 39 bytes, got %d", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8, got %q", got)
	}
}
