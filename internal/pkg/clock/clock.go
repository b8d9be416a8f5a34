package clock

import (
	"sync"
	"time"
)

// Clock is an interface for time operations to enable testability.
// Only run bookkeeping reads it; the dataset engines never depend on wall time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production implementation using the system time in UTC.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a test implementation returning a controlled time.
// With a non-zero step every call to Now advances the clock by step afterwards.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockClock creates a MockClock fixed at startTime.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// NewSteppingClock creates a MockClock that moves forward by step on each reading.
func NewSteppingClock(startTime time.Time, step time.Duration) *MockClock {
	return &MockClock{current: startTime, step: step}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the mock clock by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
