package common

import "time"

// MaxFrameDelta caps the measured frame time so a stalled window does not
// move every entity across the world in one step.
const MaxFrameDelta = 0.25

// Clock measures the time between frames.
type Clock struct {
	now  func() time.Time
	last time.Time
	dt   float64
}

// NewClock creates a clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick records a frame boundary and returns the seconds elapsed since the
// previous one. The first tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		c.dt = 0
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	c.dt = dt
	return dt
}

// DT returns the last measured frame time in seconds.
func (c *Clock) DT() float64 {
	return c.dt
}

// FPS returns the multiplicative inverse of the last frame time.
func (c *Clock) FPS() float64 {
	if c.dt <= 0 {
		return 0
	}
	return 1 / c.dt
}
