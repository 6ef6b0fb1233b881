// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() or time.AfterFunc() directly. This makes timer driven state
// machines testable because a Fake clock only moves when the test advances it.
package clock
