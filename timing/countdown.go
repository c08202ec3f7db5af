package timing

import "time"

// DisplayPad is added to a fresh deadline. Sub-second latency before the first
// frame would otherwise show the requested duration minus one second.
const DisplayPad = time.Second

// Countdown counts down to zero. A zero end time means paused, in which case
// pausedDuration holds the remaining time.
type Countdown struct {
	clock          TimeProvider
	duration       time.Duration
	endTime        time.Time
	pausedDuration time.Duration

	// rearmed marks a reset countdown whose next resume re-applies DisplayPad
	rearmed bool
}

// NewCountdown returns a running countdown of d
func NewCountdown(clock TimeProvider, d time.Duration) *Countdown {
	return &Countdown{
		clock:    clock,
		duration: d,
		endTime:  clock.Now().Add(AddSaturating(d, DisplayPad)),
	}
}

// Duration returns the requested duration
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// TogglePause pauses holding the remaining time, or resumes toward a new deadline
func (c *Countdown) TogglePause() {
	now := c.clock.Now()
	if !c.endTime.IsZero() {
		c.pausedDuration += since(c.endTime, now)
		c.endTime = time.Time{}
		return
	}

	pad := time.Duration(0)
	if c.rearmed {
		pad = DisplayPad
		c.rearmed = false
	}
	c.endTime = now.Add(AddSaturating(c.pausedDuration, pad))
	c.pausedDuration = 0
}

// TimeLeft returns the remaining time, never negative
func (c *Countdown) TimeLeft() time.Duration {
	if c.endTime.IsZero() {
		return c.pausedDuration
	}
	return SubSaturating(since(c.endTime, c.clock.Now()), c.pausedDuration)
}

// IsFinished reports whether the whole-second remaining time reached zero
func (c *Countdown) IsFinished() bool {
	return c.TimeLeft() < time.Second
}

// IsPaused reports whether the countdown is stopped
func (c *Countdown) IsPaused() bool {
	return c.endTime.IsZero()
}

// Reset leaves the countdown paused holding the full duration; it must be
// resumed explicitly
func (c *Countdown) Reset() {
	c.endTime = time.Time{}
	c.pausedDuration = c.duration
	c.rearmed = true
}
