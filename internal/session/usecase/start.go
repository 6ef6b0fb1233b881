package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/session/entity"
)

// Start opens a session on SplashScreen and arms the splash delay, after
// which the session moves to LoginScreen on its own.
func (s *Usecase) Start(ctx context.Context) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "Start")
	defer span.End()

	sess := &session{
		id:        s.uuid.Generate(),
		createdAt: s.clock.Now(),
		nav:       entity.NewNavigator(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, goerror.NewServer(goerror.ErrClosed)
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, goerror.NewBusiness("session not found", goerror.CodeNotFound)
	}
	sess.splash = s.clock.AfterFunc(s.splashDelay, func() { s.onSplashElapsed(sess) })

	slog.InfoContext(ctx, "session started", "session_id", sess.id)

	return sess.snapshot(), nil
}

func (s *Usecase) Get(ctx context.Context, id string) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer span.End()

	return s.withSession(ctx, id, func(*session) error { return nil })
}
