package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shandysiswandi/ayola/internal/otpentry"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/session/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// session is one running front end. mu is always taken before the OTP
// controller's own lock, never after.
type session struct {
	id        string
	createdAt time.Time

	mu       sync.Mutex
	nav      entity.Navigator
	login    entity.LoginForm
	register entity.RegisterForm
	otp      *otpentry.Controller
	splash   clock.Timer
	closed   bool

	focus atomic.Int32
}

// snapshot copies the session. The caller must hold sess.mu.
func (sess *session) snapshot() *entity.Snapshot {
	snap := &entity.Snapshot{
		ID:        sess.id,
		Screen:    sess.nav.Current(),
		Login:     sess.login,
		Register:  sess.register,
		FocusCell: int(sess.focus.Load()),
		CreatedAt: sess.createdAt,
	}
	if sess.otp != nil {
		st := sess.otp.Snapshot()
		snap.Otp = &st
	}
	return snap
}

func (sess *session) stopSplash() {
	if sess.splash != nil {
		sess.splash.Stop()
		sess.splash = nil
	}
}

func (sess *session) closeOtp() {
	if sess.otp != nil {
		_ = sess.otp.Close()
		sess.otp = nil
	}
}

func (sess *session) close() {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return
	}
	sess.closed = true
	sess.stopSplash()
	sess.closeOtp()
}

// withSession runs fn under the session lock and returns the resulting state.
func (s *Usecase) withSession(ctx context.Context, id string, fn func(sess *session) error) (*entity.Snapshot, error) {
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, goerror.NewBusiness("session not found", goerror.CodeNotFound)
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	return sess.snapshot(), nil
}

func requireScreen(ctx context.Context, sess *session, want entity.Screen) error {
	if cur := sess.nav.Current(); cur != want {
		slog.WarnContext(ctx, "screen not active", "session_id", sess.id, "current", cur, "want", want)
		return goerror.NewBusiness(want.String()+" is not active", goerror.CodeConflict)
	}
	return nil
}

// goTo moves the session along one edge of the screen graph and applies the
// enter and leave effects of the screens involved. The caller must hold sess.mu.
func (s *Usecase) goTo(ctx context.Context, sess *session, to entity.Screen, t entity.Trigger) error {
	from := sess.nav.Current()
	if err := sess.nav.Go(to, t); err != nil {
		slog.WarnContext(ctx, "navigation rejected", "session_id", sess.id, "from", from, "to", to, "trigger", t.String())
		return goerror.NewBusiness("navigation not allowed", goerror.CodeConflict)
	}

	switch from {
	case entity.SplashScreen:
		sess.stopSplash()
	case entity.LoginScreen:
		sess.login.Clear()
	case entity.OtpScreen:
		sess.closeOtp()
	}

	if to == entity.OtpScreen {
		sess.otp = s.newOtpController(sess)
	}

	if s.navigationCounter != nil {
		s.navigationCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("from", from.String()),
			attribute.String("to", to.String()),
			attribute.String("trigger", t.String()),
		))
	}

	slog.InfoContext(ctx, "screen changed", "session_id", sess.id, "from", from, "to", to, "trigger", t.String())

	return nil
}

// newOtpController builds the controller for a fresh OtpScreen. The caller
// must hold sess.mu.
func (s *Usecase) newOtpController(sess *session) *otpentry.Controller {
	var ctrl *otpentry.Controller

	cfg := s.otpConfig
	cfg.Listener = otpentry.Hooks{
		OnFocus: func(index int) {
			sess.focus.Store(int32(index))
		},
		OnSubmitted: func(string) {
			s.onOtpAccepted(sess, func() *otpentry.Controller { return ctrl })
		},
		OnRejected: func(string) {
			s.countAutoSubmit(context.Background(), "rejected")
			slog.Warn("otp rejected", "session_id", sess.id)
		},
	}

	ctrl = otpentry.New(cfg)

	return ctrl
}

// onOtpAccepted navigates home when the accepting controller is still the
// session's current one. owner is read under sess.mu, where it was assigned.
func (s *Usecase) onOtpAccepted(sess *session, owner func() *otpentry.Controller) {
	ctx := context.Background()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed || sess.otp == nil || sess.otp != owner() {
		return
	}

	s.countAutoSubmit(ctx, "accepted")

	if err := s.goTo(ctx, sess, entity.HomeScreen, entity.TriggerOtp); err != nil {
		slog.ErrorContext(ctx, "failed to leave otp screen", "session_id", sess.id, "error", err)
	}
}

func (s *Usecase) onSplashElapsed(sess *session) {
	ctx := context.Background()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed || sess.nav.Current() != entity.SplashScreen {
		return
	}
	sess.splash = nil

	if err := s.goTo(ctx, sess, entity.LoginScreen, entity.TriggerTimer); err != nil {
		slog.ErrorContext(ctx, "failed to leave splash screen", "session_id", sess.id, "error", err)
	}
}

func (s *Usecase) countAutoSubmit(ctx context.Context, result string) {
	if s.autoSubmitCounter != nil {
		s.autoSubmitCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}

// screenMessage is the text a form shows for a failed submit.
func screenMessage(err error, fallback string) string {
	var gerr *goerror.Error
	if errors.As(err, &gerr) && gerr.Type() != goerror.TypeValidation {
		return gerr.Msg()
	}
	return fallback
}
