package otpentry

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu        sync.Mutex
	focus     []int
	submitted []string
	rejected  []string
}

func (r *recorder) FocusCell(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focus = append(r.focus, index)
}

func (r *recorder) Submitted(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted = append(r.submitted, code)
}

func (r *recorder) Rejected(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = append(r.rejected, code)
}

type countingVerifier struct {
	calls atomic.Int32
	inner otp.Verifier
}

func (v *countingVerifier) Verify(code string) bool {
	v.calls.Add(1)
	return v.inner.Verify(code)
}

type fixture struct {
	clock    *clock.Fake
	rec      *recorder
	verifier *countingVerifier
	ctrl     *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clock:    clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		rec:      &recorder{},
		verifier: &countingVerifier{inner: otp.NewStatic(otp.DefaultStaticCode)},
	}
	f.ctrl = New(Config{Clock: f.clock, Verifier: f.verifier, Listener: f.rec})
	t.Cleanup(func() { _ = f.ctrl.Close() })

	return f
}

func (f *fixture) fill(t *testing.T, digit string) {
	t.Helper()
	for i := range DefaultLength {
		require.NoError(t, f.ctrl.EnterDigit(i, digit))
	}
}

func TestController_New(t *testing.T) {
	f := newFixture(t)

	st := f.ctrl.Snapshot()
	assert.Equal(t, []string{"", "", "", "", "", ""}, st.Cells)
	assert.Equal(t, 0, st.ActiveCell)
	assert.Equal(t, DefaultCountdown, st.Countdown)
	assert.Empty(t, st.ErrorText)
	assert.False(t, st.Loading)
	assert.Equal(t, PhaseEntering, st.Phase)
	assert.Equal(t, []int{0}, f.rec.focus)
	assert.Equal(t, 1, f.clock.Pending())
}

func TestController_SequentialMatch(t *testing.T) {
	f := newFixture(t)

	for i := range DefaultLength {
		require.NoError(t, f.ctrl.EnterDigit(i, "1"))
		want := i + 1
		if want == DefaultLength {
			want = DefaultLength - 1
		}
		assert.Equal(t, want, f.ctrl.Snapshot().ActiveCell)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, f.rec.focus)

	st := f.ctrl.Snapshot()
	assert.Equal(t, PhaseFilledPending, st.Phase)
	assert.True(t, st.Loading)

	f.clock.Advance(DefaultSubmitDelay - time.Millisecond)
	assert.Equal(t, int32(0), f.verifier.calls.Load())

	f.clock.Advance(time.Millisecond)
	assert.Equal(t, int32(1), f.verifier.calls.Load())
	assert.Equal(t, []string{"111111"}, f.rec.submitted)

	st = f.ctrl.Snapshot()
	assert.Equal(t, PhaseSubmitted, st.Phase)
	assert.False(t, st.Filled())
	assert.Equal(t, DefaultCountdown, st.Countdown)
	assert.Zero(t, f.clock.Pending())

	assert.ErrorIs(t, f.ctrl.EnterDigit(0, "1"), ErrAlreadySubmitted)
	assert.ErrorIs(t, f.ctrl.Backspace(1), ErrAlreadySubmitted)
	assert.ErrorIs(t, f.ctrl.Resend(), ErrAlreadySubmitted)
}

func TestController_Mismatch(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "9")

	f.clock.Advance(DefaultSubmitDelay)

	st := f.ctrl.Snapshot()
	assert.Equal(t, MsgInvalidOtp, st.ErrorText)
	assert.Equal(t, []string{"9", "9", "9", "9", "9", "9"}, st.Cells)
	assert.Equal(t, PhaseError, st.Phase)
	assert.False(t, st.Loading)
	assert.Equal(t, []string{"999999"}, f.rec.rejected)
	assert.Empty(t, f.rec.submitted)

	// the countdown was paused while loading and resumes afterwards
	assert.Equal(t, DefaultCountdown, st.Countdown)
	f.clock.Advance(time.Second)
	assert.Equal(t, DefaultCountdown-1, f.ctrl.Snapshot().Countdown)
}

func TestController_ErrorBlocksAutoSubmitUntilBackspace(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "9")
	f.clock.Advance(DefaultSubmitDelay)
	require.Equal(t, int32(1), f.verifier.calls.Load())

	require.NoError(t, f.ctrl.EnterDigit(5, "1"))
	f.clock.Advance(3 * DefaultSubmitDelay)
	assert.Equal(t, int32(1), f.verifier.calls.Load())
	assert.Equal(t, MsgInvalidOtp, f.ctrl.Snapshot().ErrorText)

	require.NoError(t, f.ctrl.Backspace(5))
	st := f.ctrl.Snapshot()
	assert.Empty(t, st.ErrorText)
	assert.Equal(t, 4, st.ActiveCell)

	require.NoError(t, f.ctrl.EnterDigit(5, "1"))
	assert.Equal(t, PhaseFilledPending, f.ctrl.Snapshot().Phase)
	f.clock.Advance(DefaultSubmitDelay)
	assert.Equal(t, int32(2), f.verifier.calls.Load())
	assert.Equal(t, []string{"999999", "999991"}, f.rec.rejected)
}

func TestController_BackspaceOnFirstCellIsNoop(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.EnterDigit(0, "4"))

	before := f.ctrl.Snapshot()
	focusBefore := len(f.rec.focus)

	require.NoError(t, f.ctrl.Backspace(0))

	assert.Equal(t, before, f.ctrl.Snapshot())
	assert.Len(t, f.rec.focus, focusBefore)
}

func TestController_Backspace(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.EnterDigit(0, "1"))
	require.NoError(t, f.ctrl.EnterDigit(1, "2"))

	require.NoError(t, f.ctrl.Backspace(1))

	st := f.ctrl.Snapshot()
	assert.Equal(t, []string{"1", "", "", "", "", ""}, st.Cells)
	assert.Equal(t, 0, st.ActiveCell)
	assert.Equal(t, []int{0, 1, 2, 0}, f.rec.focus)
}

func TestController_EnterEmptyClearsInPlace(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.EnterDigit(0, "1"))
	require.NoError(t, f.ctrl.EnterDigit(1, "2"))

	require.NoError(t, f.ctrl.EnterDigit(0, ""))

	st := f.ctrl.Snapshot()
	assert.Equal(t, []string{"", "2", "", "", "", ""}, st.Cells)
	assert.Equal(t, 2, st.ActiveCell)
}

func TestController_EditCancelsPendingSubmit(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "1")

	f.clock.Advance(1500 * time.Millisecond)
	require.NoError(t, f.ctrl.Backspace(5))

	st := f.ctrl.Snapshot()
	assert.False(t, st.Loading)
	assert.Equal(t, PhaseEntering, st.Phase)

	f.clock.Advance(5 * time.Second)
	assert.Zero(t, f.verifier.calls.Load())
	assert.Equal(t, DefaultCountdown-5, f.ctrl.Snapshot().Countdown)
}

func TestController_ReplacingDigitRestartsDelay(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "1")

	f.clock.Advance(1500 * time.Millisecond)
	require.NoError(t, f.ctrl.EnterDigit(5, "1"))

	f.clock.Advance(1500 * time.Millisecond)
	assert.Zero(t, f.verifier.calls.Load())

	f.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, int32(1), f.verifier.calls.Load())
	assert.Equal(t, []string{"111111"}, f.rec.submitted)
}

func TestController_Countdown(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.EnterDigit(0, "3"))

	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 25, f.ctrl.Snapshot().Countdown)

	require.NoError(t, f.ctrl.Resend())
	st := f.ctrl.Snapshot()
	assert.Equal(t, DefaultCountdown, st.Countdown)
	assert.Equal(t, []string{"3", "", "", "", "", ""}, st.Cells)

	f.clock.Advance(time.Minute)
	assert.Equal(t, 0, f.ctrl.Snapshot().Countdown)
	assert.Zero(t, f.clock.Pending())

	require.NoError(t, f.ctrl.Resend())
	assert.Equal(t, DefaultCountdown, f.ctrl.Snapshot().Countdown)
	assert.Equal(t, 1, f.clock.Pending())
}

func TestController_EditRestartsTickCadence(t *testing.T) {
	f := newFixture(t)

	f.clock.Advance(900 * time.Millisecond)
	require.NoError(t, f.ctrl.EnterDigit(0, "1"))

	f.clock.Advance(900 * time.Millisecond)
	assert.Equal(t, DefaultCountdown, f.ctrl.Snapshot().Countdown)

	f.clock.Advance(100 * time.Millisecond)
	assert.Equal(t, DefaultCountdown-1, f.ctrl.Snapshot().Countdown)
}

func TestController_ResendAtFullCountdownKeepsCadence(t *testing.T) {
	f := newFixture(t)

	f.clock.Advance(900 * time.Millisecond)
	require.NoError(t, f.ctrl.Resend())

	f.clock.Advance(100 * time.Millisecond)
	assert.Equal(t, DefaultCountdown-1, f.ctrl.Snapshot().Countdown)
}

func TestController_FireAutoSubmit(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.EnterDigit(0, "1"))

	assert.ErrorIs(t, f.ctrl.FireAutoSubmit(), ErrOtpMismatch)
	st := f.ctrl.Snapshot()
	assert.Equal(t, MsgInvalidOtp, st.ErrorText)
	assert.Equal(t, "1", st.Code())
}

func TestController_AutoSubmittingPhase(t *testing.T) {
	var (
		ctrl   *Controller
		during Phase
	)
	fc := clock.NewFake(time.Now())
	ctrl = New(Config{
		Clock: fc,
		Verifier: verifierFunc(func(code string) bool {
			during = ctrl.Snapshot().Phase
			return code == otp.DefaultStaticCode
		}),
	})
	defer ctrl.Close()

	for i := range DefaultLength {
		require.NoError(t, ctrl.EnterDigit(i, "1"))
	}
	fc.Advance(DefaultSubmitDelay)

	assert.Equal(t, PhaseAutoSubmitting, during)
	assert.Equal(t, PhaseSubmitted, ctrl.Snapshot().Phase)
}

func TestController_ListenerMayCallBack(t *testing.T) {
	fc := clock.NewFake(time.Now())
	var ctrl *Controller
	ctrl = New(Config{
		Clock: fc,
		Listener: Hooks{OnSubmitted: func(string) {
			require.NoError(t, ctrl.Close())
		}},
	})

	for i := range DefaultLength {
		require.NoError(t, ctrl.EnterDigit(i, "1"))
	}
	fc.Advance(DefaultSubmitDelay)

	assert.ErrorIs(t, ctrl.Reset(), ErrClosed)
}

func TestController_Reset(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "1")
	f.clock.Advance(DefaultSubmitDelay)
	require.Equal(t, PhaseSubmitted, f.ctrl.Snapshot().Phase)

	require.NoError(t, f.ctrl.Reset())

	st := f.ctrl.Snapshot()
	assert.Equal(t, PhaseEntering, st.Phase)
	assert.Equal(t, 0, st.ActiveCell)
	assert.Equal(t, 1, f.clock.Pending())
	require.NoError(t, f.ctrl.EnterDigit(0, "1"))
}

func TestController_Close(t *testing.T) {
	f := newFixture(t)
	f.fill(t, "1")

	require.NoError(t, f.ctrl.Close())
	require.NoError(t, f.ctrl.Close())
	assert.Zero(t, f.clock.Pending())

	f.clock.Advance(time.Minute)
	assert.Zero(t, f.verifier.calls.Load())

	assert.ErrorIs(t, f.ctrl.EnterDigit(0, "1"), ErrClosed)
	assert.ErrorIs(t, f.ctrl.Backspace(1), ErrClosed)
	assert.ErrorIs(t, f.ctrl.Resend(), ErrClosed)
	assert.ErrorIs(t, f.ctrl.FireAutoSubmit(), ErrClosed)
}

func TestController_InputErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		index int
		digit string
		want  error
	}{
		{name: "NegativeIndex", index: -1, digit: "1", want: ErrCellOutOfRange},
		{name: "IndexPastEnd", index: DefaultLength, digit: "1", want: ErrCellOutOfRange},
		{name: "Letter", index: 0, digit: "a", want: ErrInvalidDigit},
		{name: "TwoDigits", index: 0, digit: "12", want: ErrInvalidDigit},
		{name: "NonASCIIDigit", index: 0, digit: "٣", want: ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, f.ctrl.EnterDigit(tt.index, tt.digit), tt.want)
		})
	}

	assert.ErrorIs(t, f.ctrl.Backspace(DefaultLength), ErrCellOutOfRange)
	assert.Equal(t, []string{"", "", "", "", "", ""}, f.ctrl.Snapshot().Cells)
}

func TestController_RealClock(t *testing.T) {
	rec := &recorder{}
	ctrl := New(Config{
		Listener:     rec,
		SubmitDelay:  20 * time.Millisecond,
		TickInterval: 5 * time.Millisecond,
	})
	defer ctrl.Close()

	for i := range DefaultLength {
		require.NoError(t, ctrl.EnterDigit(i, "1"))
	}

	require.Eventually(t, func() bool {
		return ctrl.Snapshot().Phase == PhaseSubmitted
	}, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"111111"}, rec.submitted)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "filled_pending", PhaseFilledPending.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

type verifierFunc func(string) bool

func (f verifierFunc) Verify(code string) bool { return f(code) }
