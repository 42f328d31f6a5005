package ecs

import "time"

// Clock is the simulation time base. It only moves when Advance is called,
// so a paused host simply stops advancing it.
type Clock struct {
	now   time.Duration
	delta time.Duration
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *Clock) Advance(dt time.Duration) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.delta = dt
	c.now += dt
}

// Now is the elapsed simulation time.
func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Delta is the length of the current tick.
func (c *Clock) Delta() time.Duration {
	if c == nil {
		return 0
	}
	return c.delta
}

func (c *Clock) DeltaSeconds() float64 {
	return c.Delta().Seconds()
}

func (c *Clock) Seconds() float64 {
	return c.Now().Seconds()
}
