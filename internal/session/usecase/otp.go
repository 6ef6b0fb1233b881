package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/ayola/internal/otpentry"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/session/entity"
)

type OtpDigitInput struct {
	ID    string
	Index int
	Digit string
}

type OtpBackspaceInput struct {
	ID    string
	Index int
}

func (s *Usecase) OtpDigit(ctx context.Context, in OtpDigitInput) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "OtpDigit")
	defer span.End()

	return s.withOtp(ctx, in.ID, func(ctrl *otpentry.Controller) error {
		return ctrl.EnterDigit(in.Index, in.Digit)
	})
}

func (s *Usecase) OtpBackspace(ctx context.Context, in OtpBackspaceInput) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "OtpBackspace")
	defer span.End()

	return s.withOtp(ctx, in.ID, func(ctrl *otpentry.Controller) error {
		return ctrl.Backspace(in.Index)
	})
}

func (s *Usecase) OtpResend(ctx context.Context, id string) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "OtpResend")
	defer span.End()

	return s.withOtp(ctx, id, func(ctrl *otpentry.Controller) error {
		return ctrl.Resend()
	})
}

func (s *Usecase) withOtp(ctx context.Context, id string, fn func(ctrl *otpentry.Controller) error) (*entity.Snapshot, error) {
	return s.withSession(ctx, id, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.OtpScreen); err != nil {
			return err
		}

		if err := fn(sess.otp); err != nil {
			return mapOtpError(ctx, sess.id, err)
		}

		return nil
	})
}

func mapOtpError(ctx context.Context, sessionID string, err error) error {
	switch {
	case errors.Is(err, otpentry.ErrCellOutOfRange):
		return goerror.NewInvalidInput(nil, "index", "index is out of range")
	case errors.Is(err, otpentry.ErrInvalidDigit):
		return goerror.NewInvalidInput(nil, "digit", "digit must be a single character from 0 to 9")
	case errors.Is(err, otpentry.ErrAlreadySubmitted), errors.Is(err, otpentry.ErrClosed):
		return goerror.NewBusiness("code already submitted", goerror.CodeConflict)
	default:
		slog.ErrorContext(ctx, "failed to apply otp input", "session_id", sessionID, "error", err)
		return goerror.NewServer(err)
	}
}
