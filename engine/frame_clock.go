package engine

import (
	"sync"
	"time"
)

// FrameClock measures per-frame delta time with a clamp and pause support
// Paused time never reaches the simulation, resume continues from the pause point
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta time.Duration

	last    time.Time
	started bool

	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
	frames          uint64
}

// NewFrameClock creates a clock reading provider, deltas above maxDelta are clamped
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick returns time since the previous Tick, 0 on the first call and while paused
func (fc *FrameClock) Tick() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	now := fc.provider.Now()
	if !fc.started {
		fc.started = true
		fc.last = now
		return 0
	}
	if fc.paused {
		return 0
	}

	dt := now.Sub(fc.last)
	fc.last = now
	fc.frames++

	if dt < 0 {
		return 0
	}
	if fc.maxDelta > 0 && dt > fc.maxDelta {
		// Long stalls (suspend, debugger) become a single clamped step
		dt = fc.maxDelta
	}
	return dt
}

// Pause stops delta accumulation
func (fc *FrameClock) Pause() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.paused {
		return
	}
	fc.paused = true
	fc.pauseStart = fc.provider.Now()
}

// Resume continues from now, the paused span is dropped
func (fc *FrameClock) Resume() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if !fc.paused {
		return
	}
	now := fc.provider.Now()
	fc.totalPausedTime += now.Sub(fc.pauseStart)
	fc.pauseStart = time.Time{}
	fc.paused = false
	fc.last = now
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (fc *FrameClock) TotalPauseDuration() time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	total := fc.totalPausedTime
	if fc.paused {
		total += fc.provider.Now().Sub(fc.pauseStart)
	}
	return total
}

// Frames returns the number of non-zero frames measured
func (fc *FrameClock) Frames() uint64 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.frames
}
