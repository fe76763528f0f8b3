package bounce

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	if tm.Running() {
		t.Fatal("new timer should be stopped")
	}
	if tm.advance(time.Second) {
		t.Error("stopped timer fired")
	}

	tm.Start()
	if tm.advance(4 * time.Millisecond) {
		t.Error("timer fired early")
	}
	if tm.Remaining() != 6*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 6ms", tm.Remaining())
	}
	if !tm.advance(6 * time.Millisecond) {
		t.Error("timer did not fire at its period")
	}
	if tm.Remaining() != 10*time.Millisecond {
		t.Errorf("Remaining() = %v after fire, expected 10ms", tm.Remaining())
	}

	tm.advance(3 * time.Millisecond)
	tm.Stop()
	tm.Start()
	if tm.Remaining() != 10*time.Millisecond {
		t.Errorf("Start should discard elapsed time, Remaining() = %v", tm.Remaining())
	}
}

func TestTimerZeroPeriodNeverRuns(t *testing.T) {
	tm := NewTimer(0)
	tm.Start()
	if tm.Running() {
		t.Error("zero-period timer should not run")
	}
}
