package credential

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 8

// PasswordSymbols is the fixed set of characters accepted as a password symbol.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

const (
	MsgInvalidEmail      = "Please enter a valid email address"
	MsgPasswordLength    = "Password must be at least 8 characters long"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter."
	MsgPasswordUppercase = "Password must contain at least one uppercase letter."
	MsgPasswordSymbol    = "Password must contain at least one symbol."
)

var (
	reEmail     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reLowercase = regexp.MustCompile(`[a-z]`)
	reUppercase = regexp.MustCompile(`[A-Z]`)
)

// Result is the outcome of validating one input value.
// The zero value is valid.
type Result struct {
	msg string
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool {
	return r.msg == ""
}

// Message returns the message to show, or "" when valid.
func (r Result) Message() string {
	return r.msg
}

// Err returns nil when valid and a validation error carrying the message otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return goerror.NewValidation(r.msg)
}

func invalid(msg string) Result {
	return Result{msg: msg}
}

// ValidateEmail checks text has the shape local-part@domain.tld.
func ValidateEmail(text string) Result {
	if !reEmail.MatchString(text) {
		return invalid(MsgInvalidEmail)
	}
	return Result{}
}

// ValidatePassword applies the password policy in priority order and reports
// only the first failing rule.
func ValidatePassword(text string) Result {
	switch {
	case utf8.RuneCountInString(text) < MinPasswordLength:
		return invalid(MsgPasswordLength)
	case !reLowercase.MatchString(text):
		return invalid(MsgPasswordLowercase)
	case !reUppercase.MatchString(text):
		return invalid(MsgPasswordUppercase)
	case !strings.ContainsAny(text, PasswordSymbols):
		return invalid(MsgPasswordSymbol)
	default:
		return Result{}
	}
}

// SubmitEnabled reports whether a form may submit: every required value is
// non-empty and the form shows no error text. The error text is whatever the
// last keystroke or submit attempt left behind.
func SubmitEnabled(errorText string, required ...string) bool {
	for _, v := range required {
		if v == "" {
			return false
		}
	}
	return errorText == ""
}
