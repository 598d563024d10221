package game

import (
	"testing"
	"time"
)

func TestClockStepsDue(t *testing.T) {
	c := NewClock(150 * time.Millisecond)
	if n := c.Advance(time.Second); n != 0 {
		t.Fatalf("Expected a stopped clock to yield 0 steps, got %d", n)
	}

	c.Start()
	steps := []struct {
		dt   time.Duration
		want int
	}{
		{100 * time.Millisecond, 0},
		{50 * time.Millisecond, 1},
		{149 * time.Millisecond, 0},
		{1 * time.Millisecond, 1},
		{300 * time.Millisecond, 2},
	}
	for i, s := range steps {
		if got := c.Advance(s.dt); got != s.want {
			t.Errorf("Advance #%d(%v): expected %d, got %d", i, s.dt, s.want, got)
		}
	}
}

// TestClockClampsCatchUp verifies a long stall does not replay every missed step.
func TestClockClampsCatchUp(t *testing.T) {
	c := NewClock(150 * time.Millisecond)
	c.Start()
	if got := c.Advance(10 * time.Second); got != maxCatchUpSteps {
		t.Errorf("Expected %d steps, got %d", maxCatchUpSteps, got)
	}
	if got := c.Advance(100 * time.Millisecond); got != 0 {
		t.Errorf("Expected the backlog to be dropped, got %d", got)
	}
}

func TestClockStopAndRestart(t *testing.T) {
	c := NewClock(150 * time.Millisecond)
	c.Start()
	c.Advance(140 * time.Millisecond)
	c.Stop()
	if c.Running() {
		t.Fatal("Expected clock stopped")
	}
	c.Start()
	if got := c.Advance(20 * time.Millisecond); got != 0 {
		t.Errorf("Expected accumulator reset on start, got %d steps", got)
	}
}

func TestNewClockDefaultsInterval(t *testing.T) {
	if got := NewClock(0).Interval(); got != DefaultTick {
		t.Errorf("Expected %v, got %v", DefaultTick, got)
	}
}
