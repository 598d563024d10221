package game

import "time"

// Clock turns elapsed frame time into whole simulation steps.
// A stopped clock accumulates nothing.
type Clock struct {
	interval time.Duration
	acc      time.Duration
	running  bool
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTick
	}
	return &Clock{interval: interval}
}

func (c *Clock) Interval() time.Duration { return c.interval }
func (c *Clock) Running() bool           { return c.running }

// Start resets the accumulator so the first step lands one interval later.
func (c *Clock) Start() {
	c.acc = 0
	c.running = true
}

func (c *Clock) Stop() {
	c.running = false
	c.acc = 0
}

// Advance adds dt and returns the number of steps now due.
// Long stalls are clamped to maxCatchUpSteps.
func (c *Clock) Advance(dt time.Duration) int {
	if !c.running || dt <= 0 {
		return 0
	}
	c.acc += dt
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	if n > maxCatchUpSteps {
		n = maxCatchUpSteps
		c.acc = 0
	}
	return n
}
