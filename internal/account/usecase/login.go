package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	Name  string
	Email string
}

// Login compares the input against the stored account. The comparison is
// exact: no trimming and no case folding.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cred, err := s.repoKV.GetCredential(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no account stored on device", "email", in.Email)
		return nil, goerror.NewBusiness(entity.MsgInvalidCredentials, goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err, entity.MsgErrorLogin)
	}

	if !cred.Matches(in.Email, in.Password) {
		slog.WarnContext(ctx, "credential not match", "email", in.Email)
		return nil, goerror.NewBusiness(entity.MsgInvalidCredentials, goerror.CodeUnauthorized)
	}

	return &LoginOutput{Name: cred.Name, Email: cred.Email}, nil
}
