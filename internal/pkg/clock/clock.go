package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
	// AfterFunc waits for the duration to elapse and then calls f in its own goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeClocker is the production clock implementation backed by the time package.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f using time.AfterFunc.
func (*TimeClocker) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
