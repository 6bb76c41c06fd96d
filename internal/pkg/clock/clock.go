// Package clock provides a tiny time abstraction.
//
// Business code should depend on Clocker instead of calling time.Now directly
// so tests can pin record timestamps to a deterministic value.
package clock

import "time"

// Clocker abstracts the current time source.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker reading the system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}
