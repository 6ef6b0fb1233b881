package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

type ProfileOutput struct {
	Name  string
	Email string
}

func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	cred, err := s.repoKV.GetCredential(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{Name: cred.Name, Email: cred.Email}, nil
}
