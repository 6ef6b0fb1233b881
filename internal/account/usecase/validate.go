package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
)

type ValidateInput struct {
	Email    string `validate:"email_shape"`
	Password string `validate:"password_policy"`
}

type ValidateOutput struct {
	EmailMessage    string
	PasswordMessage string
}

func (o ValidateOutput) Valid() bool {
	return o.EmailMessage == "" && o.PasswordMessage == ""
}

// ValidateCredential runs the email and password rules independently and
// reports the message for each field. An empty message means valid.
func (s *Usecase) ValidateCredential(ctx context.Context, in ValidateInput) (*ValidateOutput, error) {
	_, span := s.startSpan(ctx, "ValidateCredential")
	defer span.End()

	var verr validator.V10ValidationError
	if err := s.validator.Validate(in); err != nil && !errors.As(err, &verr) {
		return nil, goerror.NewServer(err)
	}

	return &ValidateOutput{
		EmailMessage:    verr["email"],
		PasswordMessage: verr["password"],
	}, nil
}
