// Package clock provides shared.Clock implementations: the system wall
// clock used in production wiring and a fixed clock for deterministic tests.
package clock

import "time"

// System reads the current wall-clock time.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() System {
	return System{}
}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Tests use it to make transaction
// timestamps deterministic.
type Fixed struct {
	Instant time.Time
}

// NewFixed creates a clock frozen at the given instant.
func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant}
}

// Now returns the frozen instant.
func (f *Fixed) Now() time.Time {
	return f.Instant
}
