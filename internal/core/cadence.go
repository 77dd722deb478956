package core

import "time"

// Cadence paces the reveal of new generations at a fixed number of ticks
// per second, independent of how often the render loop polls it. Elapsed
// wall time accumulates as credit; each tick spends one interval of it.
type Cadence struct {
	interval time.Duration
	credit   time.Duration
	last     time.Time
}

// NewCadence constructs a Cadence targeting the given TPS. The first poll
// always ticks, so a freshly reset board starts revealing immediately.
func NewCadence(tps int) *Cadence {
	c := &Cadence{}
	c.SetTPS(tps)
	c.credit = c.interval
	return c
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (c *Cadence) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	c.interval = time.Second / time.Duration(tps)
}

// Tick reports whether another generation should be revealed now.
func (c *Cadence) Tick() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	c.credit += now.Sub(c.last)
	c.last = now
	if c.credit < c.interval {
		return false
	}
	c.credit -= c.interval
	return true
}
