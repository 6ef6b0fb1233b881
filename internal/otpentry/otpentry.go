package otpentry

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
)

// MsgInvalidOtp is the error text shown after a rejected auto-submit.
const MsgInvalidOtp = "Invalid Otp"

const (
	DefaultLength       = 6
	DefaultCountdown    = 30
	DefaultSubmitDelay  = 2000 * time.Millisecond
	DefaultTickInterval = time.Second
)

var (
	ErrCellOutOfRange   = errors.New("otpentry: cell index out of range")
	ErrInvalidDigit     = errors.New("otpentry: cell accepts a single digit")
	ErrClosed           = errors.New("otpentry: controller closed")
	ErrAlreadySubmitted = errors.New("otpentry: code already submitted")
	ErrOtpMismatch      = errors.New("otpentry: " + MsgInvalidOtp)
)

// Phase is the coarse state of the entry screen.
type Phase int

const (
	// PhaseEntering means at least one cell is empty and no error is shown.
	PhaseEntering Phase = iota
	// PhaseFilledPending means every cell is filled and auto-submit is scheduled.
	PhaseFilledPending
	// PhaseAutoSubmitting means the delay elapsed and the code is being verified.
	PhaseAutoSubmitting
	// PhaseError means the last auto-submit was rejected.
	PhaseError
	// PhaseSubmitted means the code was accepted.
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseFilledPending:
		return "filled_pending"
	case PhaseAutoSubmitting:
		return "auto_submitting"
	case PhaseError:
		return "error"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of the controller state.
type State struct {
	Cells      []string
	ActiveCell int
	Countdown  int
	ErrorText  string
	Loading    bool
	Phase      Phase
}

// Code joins the cells in order.
func (s State) Code() string {
	return strings.Join(s.Cells, "")
}

// Filled reports whether every cell holds a digit.
func (s State) Filled() bool {
	return filled(s.Cells)
}

func filled(cells []string) bool {
	return lo.EveryBy(cells, func(v string) bool { return v != "" })
}

// Listener receives the side effects emitted by a Controller. Methods are
// called without any controller lock held, so they may call back into it.
type Listener interface {
	// FocusCell asks the view to move input focus to the given cell.
	FocusCell(index int)
	// Submitted reports an accepted code.
	Submitted(code string)
	// Rejected reports a code that failed verification.
	Rejected(code string)
}

// Hooks adapts optional funcs to a Listener. Nil fields are ignored.
type Hooks struct {
	OnFocus     func(index int)
	OnSubmitted func(code string)
	OnRejected  func(code string)
}

func (h Hooks) FocusCell(index int) {
	if h.OnFocus != nil {
		h.OnFocus(index)
	}
}

func (h Hooks) Submitted(code string) {
	if h.OnSubmitted != nil {
		h.OnSubmitted(code)
	}
}

func (h Hooks) Rejected(code string) {
	if h.OnRejected != nil {
		h.OnRejected(code)
	}
}

// Config configures a Controller. Zero values take the defaults above.
type Config struct {
	Clock    clock.Clocker
	Verifier otp.Verifier
	Listener Listener

	Length       int
	Countdown    int
	SubmitDelay  time.Duration
	TickInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Verifier == nil {
		c.Verifier = otp.NewStatic(otp.DefaultStaticCode)
	}
	if c.Listener == nil {
		c.Listener = Hooks{}
	}
	if c.Length <= 0 {
		c.Length = DefaultLength
	}
	if c.Countdown <= 0 {
		c.Countdown = DefaultCountdown
	}
	if c.SubmitDelay <= 0 {
		c.SubmitDelay = DefaultSubmitDelay
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	return c
}
