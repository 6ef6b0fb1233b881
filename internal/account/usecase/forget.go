package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

// Forget removes the stored account from the device.
func (s *Usecase) Forget(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Forget")
	defer span.End()

	if err := s.repoKV.ClearCredential(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to repo clear credential", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
