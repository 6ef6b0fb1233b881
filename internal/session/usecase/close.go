package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

// Close tears a session down and cancels every timer it owns.
func (s *Usecase) Close(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Close")
	defer span.End()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return goerror.NewBusiness("session not found", goerror.CodeNotFound)
	}

	sess.close()
	slog.InfoContext(ctx, "session closed", "session_id", id)

	return nil
}

// CloseAll tears down every session. Start fails afterwards.
func (s *Usecase) CloseAll(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*session)
	s.closed = true
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}

	slog.InfoContext(ctx, "all sessions closed", "count", len(sessions))

	return nil
}
