package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(30 * time.Minute)
	got := mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if !got.Equal(expected) || !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, got)
	}
}

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(3 * time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", got)
	}

	clock.Pause()
	clock.Pause() // idempotent
	mock.Advance(10 * time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected elapsed frozen at 3s while paused, got %v", got)
	}
	if got := clock.TotalPaused(); got != 10*time.Second {
		t.Errorf("Expected 10s paused in progress, got %v", got)
	}

	clock.Resume()
	clock.Resume() // idempotent
	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 5*time.Second {
		t.Errorf("Expected 5s elapsed after resume, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock to be running")
	}

	before := clock.Now()
	mock.Advance(time.Second)
	if got := clock.Now().Sub(before); got != time.Second {
		t.Errorf("Expected game time to advance 1s, got %v", got)
	}

	clock.Pause()
	clock.Restart()
	if clock.IsPaused() || clock.Elapsed() != 0 || clock.TotalPaused() != 0 {
		t.Errorf("Expected restart to clear state, got paused=%v elapsed=%v", clock.IsPaused(), clock.Elapsed())
	}
}

func TestMockTimeProvider_Step(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	got := mock.Step(3)
	if want := start.Add(3 * ReferenceFrame); !got.Equal(want) {
		t.Errorf("Expected %v after three frames, got %v", want, got)
	}
	if FrameScale(ReferenceFrame) != 1 {
		t.Errorf("Expected one reference frame to scale by 1, got %v", FrameScale(ReferenceFrame))
	}
}
