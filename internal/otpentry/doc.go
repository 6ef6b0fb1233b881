// Package otpentry drives the six-cell one-time passcode entry screen.
//
// A Controller owns the cell contents, the active cell, the resend countdown
// and the auto-submit delay. Every state change goes through a single re-arm
// step that cancels both outstanding timers and starts fresh ones for the new
// state, so a timer never fires against state it was not scheduled for.
package otpentry
