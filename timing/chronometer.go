package timing

import "time"

// Chronometer is a count-up stopwatch. A zero start time means paused.
type Chronometer struct {
	clock          TimeProvider
	startTime      time.Time
	pausedDuration time.Duration
}

// NewChronometer returns a paused chronometer at zero
func NewChronometer(clock TimeProvider) *Chronometer {
	return &Chronometer{clock: clock}
}

// Start begins running from now; no-op when already running
func (c *Chronometer) Start() {
	if c.startTime.IsZero() {
		c.startTime = c.clock.Now()
	}
}

// TogglePause folds the running span into the accumulated time and pauses,
// or resumes from now when paused
func (c *Chronometer) TogglePause() {
	now := c.clock.Now()
	if !c.startTime.IsZero() {
		c.pausedDuration += since(now, c.startTime)
		c.startTime = time.Time{}
	} else {
		c.startTime = now
	}
}

// Reset discards all accumulated time, leaving the chronometer paused at zero
func (c *Chronometer) Reset() {
	c.startTime = time.Time{}
	c.pausedDuration = 0
}

// IsPaused reports whether the chronometer is stopped
func (c *Chronometer) IsPaused() bool {
	return c.startTime.IsZero()
}

// Elapsed returns the total running time
func (c *Chronometer) Elapsed() time.Duration {
	if c.startTime.IsZero() {
		return c.pausedDuration
	}
	return since(c.clock.Now(), c.startTime) + c.pausedDuration
}
