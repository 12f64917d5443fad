package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is a source of the current time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
// Used for real-time operations that should not pause
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider only moves when told to; safe for concurrent readers
type MockTimeProvider struct {
	base    time.Time
	elapsed atomic.Int64 // Nanoseconds since base
}

var _ TimeProvider = (*MockTimeProvider)(nil)

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.elapsed.Load()))
}

// SetTime jumps to t, which may be before the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.elapsed.Store(int64(t.Sub(m.base)))
}

// Advance moves forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.base.Add(time.Duration(m.elapsed.Add(int64(d))))
}
