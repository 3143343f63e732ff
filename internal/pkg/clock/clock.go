// Package clock abstracts time for the plan TTL and booking timestamps so
// tests can pin or advance the current instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now reports UTC; every persisted timestamp goes through here.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock only moves when told to. Not safe for concurrent mutation;
// tests set it up before exercising goroutines.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
