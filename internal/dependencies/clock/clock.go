package clock

import "time"

// Clock abstracts the source of the current time so services can be
// driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock, backed by the system clock.
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
