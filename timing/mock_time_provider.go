package timing

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually driven clock for stopwatch and countdown tests
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

// NewMockTimeProvider returns a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// Now returns the current mocked instant
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t; Elapsed is measured from t afterwards
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.start = t
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Elapsed returns how far the clock moved since construction or the last SetTime
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}

// Step advances by frame up to n times, calling fn after each tick.
// It stops early when fn returns false and returns the number of ticks taken.
func (m *MockTimeProvider) Step(frame time.Duration, n int, fn func(tick int) bool) int {
	for i := 1; i <= n; i++ {
		m.Advance(frame)
		if !fn(i) {
			return i
		}
	}
	return n
}
