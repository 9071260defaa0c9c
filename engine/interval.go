package engine

import (
	"sync"
	"time"
)

// Interval is a stoppable fixed-period ticker for a select loop
// C returns nil while stopped, so a select case on it never fires after Stop
type Interval struct {
	mu      sync.Mutex
	period  time.Duration
	ticker  *time.Ticker
	running bool
}

// NewInterval creates a stopped interval
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Start begins ticking, no-op when already running
func (iv *Interval) Start() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if iv.running {
		return
	}
	if iv.ticker == nil {
		iv.ticker = time.NewTicker(iv.period)
	} else {
		iv.ticker.Reset(iv.period)
	}
	iv.running = true
}

// Stop halts ticking; the caller's next select iteration sees a nil channel
func (iv *Interval) Stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if !iv.running {
		return
	}
	iv.ticker.Stop()
	iv.running = false
}

// Restart stops and starts with a fresh full period
func (iv *Interval) Restart() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if iv.ticker == nil {
		iv.ticker = time.NewTicker(iv.period)
	} else {
		iv.ticker.Reset(iv.period)
	}
	iv.running = true
}

// C returns the tick channel, nil when stopped
func (iv *Interval) C() <-chan time.Time {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if !iv.running {
		return nil
	}
	return iv.ticker.C
}

// Running reports whether ticks are being delivered
func (iv *Interval) Running() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.running
}
