package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	accountuc "github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/otpentry"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/config"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
	"github.com/shandysiswandi/ayola/internal/pkg/uid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type account interface {
	Register(ctx context.Context, in accountuc.RegisterInput) error
	Login(ctx context.Context, in accountuc.LoginInput) (*accountuc.LoginOutput, error)
}

type Usecase struct {
	account  account
	verifier otp.Verifier
	clock    clock.Clocker
	uuid     uid.StringID
	ins      instrument.Instrumentation

	splashDelay time.Duration
	otpConfig   otpentry.Config

	autoSubmitCounter metric.Int64Counter
	navigationCounter metric.Int64Counter

	mu       sync.RWMutex
	sessions map[string]*session
	closed   bool
}

type Dependency struct {
	Account    account
	Verifier   otp.Verifier
	Clock      clock.Clocker
	UUID       uid.StringID
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	uc := &Usecase{
		account:     dep.Account,
		verifier:    dep.Verifier,
		clock:       dep.Clock,
		uuid:        dep.UUID,
		ins:         dep.Instrument,
		splashDelay: dep.Config.GetMillisecond("modules.session.splash_delay_ms"),
		otpConfig: otpentry.Config{
			Clock:        dep.Clock,
			Verifier:     dep.Verifier,
			Length:       dep.Config.GetInt("modules.session.otp.length"),
			Countdown:    dep.Config.GetInt("modules.session.otp.countdown_seconds"),
			SubmitDelay:  dep.Config.GetMillisecond("modules.session.otp.submit_delay_ms"),
			TickInterval: dep.Config.GetMillisecond("modules.session.otp.tick_interval_ms"),
		},
		sessions: make(map[string]*session),
	}

	meter := dep.Instrument.Meter("session.usecase")

	var err error
	uc.autoSubmitCounter, err = meter.Int64Counter("otp.auto_submit", metric.WithDescription("Number of OTP auto-submits by result"))
	if err != nil {
		slog.Error("failed to create otp auto submit counter", "error", err)
	}

	uc.navigationCounter, err = meter.Int64Counter("session.navigation", metric.WithDescription("Number of screen transitions"))
	if err != nil {
		slog.Error("failed to create session navigation counter", "error", err)
	}

	return uc
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("session.usecase").Start(ctx, name)
}

func (s *Usecase) lookup(ctx context.Context, id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		slog.WarnContext(ctx, "session not found", "session_id", id)
		return nil, goerror.NewBusiness("session not found", goerror.CodeNotFound)
	}

	return sess, nil
}
