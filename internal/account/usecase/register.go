package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Register stores the account on the device. Shapes are not re-checked here:
// the form gates submit on its last error text only. Writes are sequential and
// not rolled back, so a failure part way through leaves earlier keys written.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoKV.SaveCredential(ctx, entity.Credential{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo save credential", "email", in.Email, "error", err)
		return goerror.NewServer(err, entity.MsgErrorRegister)
	}

	slog.InfoContext(ctx, "account registered", "email", in.Email)

	return nil
}
