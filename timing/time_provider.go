// Package timing implements the stopwatch and countdown state machines over a
// monotonic time source.
package timing

import (
	"math"
	"time"
)

// TimeProvider supplies monotonic instants
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// SubSaturating returns a-b, or zero when b exceeds a
func SubSaturating(a, b time.Duration) time.Duration {
	if b >= a {
		return 0
	}
	return a - b
}

// AddSaturating returns a+b for non-negative operands, clamped at the largest
// representable duration
func AddSaturating(a, b time.Duration) time.Duration {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// since returns later-earlier, clamped at zero
func since(later, earlier time.Time) time.Duration {
	d := later.Sub(earlier)
	if d < 0 {
		return 0
	}
	return d
}
