// Package credential holds the client-side rules for email and password input.
//
// The functions are pure and cheap, so forms call them on every keystroke.
// A Result is either valid or carries exactly one message; for passwords the
// first failing rule wins.
package credential
