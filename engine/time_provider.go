package engine

import "time"

// TimeProvider abstracts the clock so systems stay deterministic under
// test. Production code injects MonotonicTimeProvider or PausableClock;
// tests inject MockTimeProvider.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the real system clock
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
