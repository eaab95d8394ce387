package core

import "time"

type Clock struct {
	startTime float64
	elapsed   float64
}

func NewClock() *Clock {
	return &Clock{}
}

// AbsoluteTime returns the wall clock in seconds since the Unix epoch.
func AbsoluteTime() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.startTime != 0 {
		c.elapsed = AbsoluteTime() - c.startTime
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = AbsoluteTime()
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = 0
}

// Elapsed returns the seconds measured at the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

func (c *Clock) ElapsedDuration() time.Duration {
	return time.Duration(c.elapsed * float64(time.Second))
}
