package otpentry

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shandysiswandi/ayola/internal/pkg/clock"
)

// Controller is the OTP entry state machine. All methods are safe for
// concurrent use; each one runs to completion before the next is applied.
type Controller struct {
	cfg Config

	mu         sync.Mutex
	cells      []string
	activeCell int
	countdown  int
	errText    string
	loading    bool
	firing     bool
	submitted  bool
	closed     bool

	// gen invalidates timer callbacks scheduled before the latest re-arm.
	gen         uint64
	tickTimer   clock.Timer
	submitTimer clock.Timer

	effects []func()
}

// New returns a Controller with empty cells, the first cell focused and the
// countdown running.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg.withDefaults()}

	c.mu.Lock()
	c.resetLocked()
	c.setActive(0)
	c.rearm()
	c.unlockAndFlush()

	return c
}

// EnterDigit writes digit into the cell at index and moves the active cell
// forward. An empty digit clears the cell without moving the cursor.
func (c *Controller) EnterDigit(index int, digit string) error {
	if digit != "" && !isDigit(digit) {
		return ErrInvalidDigit
	}

	c.mu.Lock()
	if err := c.checkLocked(index); err != nil {
		c.mu.Unlock()
		return err
	}

	c.cells = slices.Clone(c.cells)
	c.cells[index] = digit
	if digit != "" && index < len(c.cells)-1 {
		c.setActive(index + 1)
	}
	c.rearm()
	c.unlockAndFlush()

	return nil
}

// Backspace clears the cell at index, moves the active cell back and clears
// the error text. It does nothing on the first cell.
func (c *Controller) Backspace(index int) error {
	c.mu.Lock()
	if err := c.checkLocked(index); err != nil {
		c.mu.Unlock()
		return err
	}

	if index == 0 {
		c.mu.Unlock()
		return nil
	}

	c.cells = slices.Clone(c.cells)
	c.cells[index] = ""
	c.setActive(index - 1)
	c.errText = ""
	c.rearm()
	c.unlockAndFlush()

	return nil
}

// Resend restarts the countdown. Cells and error text are kept.
func (c *Controller) Resend() error {
	c.mu.Lock()
	if err := c.checkLocked(0); err != nil {
		c.mu.Unlock()
		return err
	}

	if c.countdown != c.cfg.Countdown {
		c.countdown = c.cfg.Countdown
		c.rearm()
	}
	c.unlockAndFlush()

	return nil
}

// FireAutoSubmit verifies the current cells immediately, as the auto-submit
// timer does once its delay elapses. It returns ErrOtpMismatch when the code
// is rejected.
func (c *Controller) FireAutoSubmit() error {
	c.mu.Lock()
	if err := c.checkLocked(0); err != nil {
		c.mu.Unlock()
		return err
	}
	gen := c.gen
	c.mu.Unlock()

	if ok, applied := c.fire(gen); applied && !ok {
		return ErrOtpMismatch
	}
	return nil
}

// Reset returns the controller to its initial state, including after a
// successful submit.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}

	c.stopTimers()
	c.resetLocked()
	c.setActive(0)
	c.rearm()
	c.unlockAndFlush()

	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Cells:      slices.Clone(c.cells),
		ActiveCell: c.activeCell,
		Countdown:  c.countdown,
		ErrorText:  c.errText,
		Loading:    c.loading,
		Phase:      c.phaseLocked(),
	}
}

// Close cancels both timers. Later calls return ErrClosed; Close itself is
// idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.gen++
	c.stopTimers()
	c.effects = nil

	return nil
}

func (c *Controller) checkLocked(index int) error {
	switch {
	case c.closed:
		return ErrClosed
	case c.submitted:
		return ErrAlreadySubmitted
	case index < 0 || index >= len(c.cells):
		return ErrCellOutOfRange
	}
	return nil
}

func (c *Controller) resetLocked() {
	c.cells = make([]string, c.cfg.Length)
	c.countdown = c.cfg.Countdown
	c.errText = ""
	c.loading = false
	c.firing = false
	c.submitted = false
}

func (c *Controller) setActive(index int) {
	c.activeCell = index
	c.effects = append(c.effects, func() { c.cfg.Listener.FocusCell(index) })
}

// rearm cancels both timers and starts whichever ones the current state
// calls for. The caller must hold c.mu.
func (c *Controller) rearm() {
	c.stopTimers()
	c.gen++
	gen := c.gen

	c.loading = filled(c.cells) && c.errText == ""
	if c.loading {
		c.submitTimer = c.cfg.Clock.AfterFunc(c.cfg.SubmitDelay, func() { c.fire(gen) })
	}

	if c.countdown > 0 && !c.loading {
		c.tickTimer = c.cfg.Clock.AfterFunc(c.cfg.TickInterval, func() { c.tick(gen) })
	}
}

func (c *Controller) stopTimers() {
	if c.tickTimer != nil {
		c.tickTimer.Stop()
		c.tickTimer = nil
	}
	if c.submitTimer != nil {
		c.submitTimer.Stop()
		c.submitTimer = nil
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}

	c.tickTimer = nil
	if c.countdown > 0 && !c.loading {
		c.countdown--
	}
	c.rearm()
	c.unlockAndFlush()
}

// fire verifies the cells scheduled under gen. applied is false when the
// state moved on before or during verification.
func (c *Controller) fire(gen uint64) (ok, applied bool) {
	c.mu.Lock()
	if c.closed || c.submitted || gen != c.gen {
		c.mu.Unlock()
		return false, false
	}
	c.submitTimer = nil
	c.firing = true
	code := strings.Join(c.cells, "")
	c.mu.Unlock()

	ok = c.cfg.Verifier.Verify(code)

	c.mu.Lock()
	c.firing = false
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return ok, false
	}

	if ok {
		c.stopTimers()
		c.gen++
		c.resetLocked()
		c.activeCell = 0
		c.submitted = true
		c.effects = append(c.effects, func() { c.cfg.Listener.Submitted(code) })
	} else {
		c.errText = MsgInvalidOtp
		c.rearm()
		c.effects = append(c.effects, func() { c.cfg.Listener.Rejected(code) })
	}
	c.unlockAndFlush()

	return ok, true
}

func (c *Controller) phaseLocked() Phase {
	switch {
	case c.submitted:
		return PhaseSubmitted
	case c.firing:
		return PhaseAutoSubmitting
	case c.errText != "":
		return PhaseError
	case c.loading:
		return PhaseFilledPending
	default:
		return PhaseEntering
	}
}

// unlockAndFlush releases c.mu and then runs the queued listener calls.
func (c *Controller) unlockAndFlush() {
	effects := c.effects
	c.effects = nil
	c.mu.Unlock()

	for _, fn := range effects {
		fn()
	}
}

func isDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && r >= '0' && r <= '9'
}
