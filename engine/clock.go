package engine

import "time"

// Clock turns time provider readings into elapsed and per-frame delta seconds
type Clock struct {
	provider TimeProvider
	start    time.Time
	previous time.Time
	started  bool
}

// NewClock creates a clock, the first Advance marks time zero
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{provider: provider}
}

// Advance reads the provider and returns seconds since the first reading and since the previous one
// A reading earlier than the previous one yields delta 0 and leaves elapsed unchanged
func (c *Clock) Advance() (elapsed, delta float64) {
	now := c.provider.Now()
	if !c.started {
		c.start, c.previous, c.started = now, now, true
		return 0, 0
	}
	if d := now.Sub(c.previous); d > 0 {
		delta = d.Seconds()
		c.previous = now
	}
	return c.previous.Sub(c.start).Seconds(), delta
}
