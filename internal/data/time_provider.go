package data

import "time"

// TimeProvider supplies the clock so tests can pin it.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses the system clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// FixedTimeProvider returns a pinned time for tests.
type FixedTimeProvider struct {
	fixed time.Time
}

// NewFixedTimeProvider creates a provider pinned to t.
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixed: t}
}

func (f *FixedTimeProvider) Now() time.Time { return f.fixed }

// SetTime moves the pinned time.
func (f *FixedTimeProvider) SetTime(t time.Time) { f.fixed = t }
