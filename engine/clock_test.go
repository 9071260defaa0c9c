package engine

import (
	"testing"
	"time"
)

func newMockClock(maxDelta time.Duration) (*FrameClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameClock(mock, maxDelta), mock
}

func TestFrameClockDelta(t *testing.T) {
	fc, mock := newMockClock(100 * time.Millisecond)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("first tick dt = %v, want 0", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); dt != 16*time.Millisecond {
		t.Errorf("dt = %v, want 16ms", dt)
	}

	mock.Advance(5 * time.Second)
	if dt := fc.Tick(); dt != 100*time.Millisecond {
		t.Errorf("stall dt = %v, want clamp 100ms", dt)
	}

	if fc.Frames() != 2 {
		t.Errorf("frames = %d, want 2", fc.Frames())
	}
}

func TestFrameClockPause(t *testing.T) {
	fc, mock := newMockClock(time.Second)
	fc.Tick()

	fc.Pause()
	if !fc.IsPaused() {
		t.Fatal("clock not paused")
	}
	mock.Advance(500 * time.Millisecond)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("paused dt = %v, want 0", dt)
	}
	if got := fc.TotalPauseDuration(); got != 500*time.Millisecond {
		t.Errorf("in-progress pause = %v, want 500ms", got)
	}

	mock.Advance(300 * time.Millisecond)
	fc.Resume()
	mock.Advance(20 * time.Millisecond)
	if dt := fc.Tick(); dt != 20*time.Millisecond {
		t.Errorf("dt after resume = %v, want 20ms", dt)
	}
	if got := fc.TotalPauseDuration(); got != 800*time.Millisecond {
		t.Errorf("total pause = %v, want 800ms", got)
	}

	// Double pause/resume are no-ops
	fc.Resume()
	fc.Pause()
	fc.Pause()
	mock.Advance(100 * time.Millisecond)
	fc.Resume()
	if got := fc.TotalPauseDuration(); got != 900*time.Millisecond {
		t.Errorf("total pause = %v, want 900ms", got)
	}
}

func TestFrameClockBackwardsTime(t *testing.T) {
	fc, mock := newMockClock(time.Second)
	fc.Tick()
	mock.Advance(-time.Second)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("negative dt = %v, want 0", dt)
	}
}

func TestIntervalDelivers(t *testing.T) {
	iv := NewInterval(5 * time.Millisecond)
	if iv.C() != nil {
		t.Fatal("stopped interval must return nil channel")
	}

	iv.Start()
	defer iv.Stop()

	select {
	case <-iv.C():
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestIntervalNoTickAfterStop(t *testing.T) {
	iv := NewInterval(time.Millisecond)
	iv.Start()
	<-iv.C()

	iv.Stop()
	if iv.Running() {
		t.Error("interval still running after Stop")
	}
	if iv.C() != nil {
		t.Fatal("C() must be nil after Stop")
	}

	// A select on the stopped channel never fires
	select {
	case <-iv.C():
		t.Fatal("tick received after Stop")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestIntervalRestart(t *testing.T) {
	iv := NewInterval(time.Millisecond)
	iv.Start()
	iv.Stop()

	iv.Restart()
	defer iv.Stop()
	if !iv.Running() {
		t.Fatal("Restart did not resume")
	}
	select {
	case <-iv.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after Restart")
	}
}
