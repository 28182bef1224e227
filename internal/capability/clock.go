package capability

import "time"

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{At: t}
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
