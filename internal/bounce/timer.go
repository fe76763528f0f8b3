package bounce

import "time"

// Timer is a logical periodic trigger fed with elapsed wall-clock time.
// It never fires on its own; the engine advances it from Advance.
type Timer struct {
	Period  time.Duration
	elapsed time.Duration
	running bool
}

// NewTimer creates a stopped timer.
func NewTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Start (re)starts the timer from zero. A non-positive period never runs.
func (t *Timer) Start() {
	t.elapsed = 0
	t.running = t.Period > 0
}

// Stop halts the timer and discards accumulated time.
func (t *Timer) Stop() {
	t.elapsed = 0
	t.running = false
}

// Running reports whether the timer is started.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time until the next fire.
func (t *Timer) Remaining() time.Duration {
	return t.Period - t.elapsed
}

// advance adds d and reports whether the timer fired. Callers never pass
// more than Remaining, so a single call fires at most once.
func (t *Timer) advance(d time.Duration) bool {
	if !t.running {
		return false
	}
	t.elapsed += d
	if t.elapsed >= t.Period {
		t.elapsed -= t.Period
		return true
	}
	return false
}
