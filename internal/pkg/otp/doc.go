// Package otp decides whether a one-time passcode entered by a user is the
// expected one.
//
// Static compares against a fixed code (the default "111111"). TOTP derives
// the expected code from a shared secret and the current time, for
// deployments that pair the passcode screen with an authenticator app.
package otp
