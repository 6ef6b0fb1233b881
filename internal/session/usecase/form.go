package usecase

import (
	"context"
	"log/slog"

	accountentity "github.com/shandysiswandi/ayola/internal/account/entity"
	accountuc "github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/session/entity"
)

type FormInput struct {
	ID    string
	Field entity.Field
	Value string
}

var errSubmitDisabled = goerror.NewBusiness("submit is disabled", goerror.CodeInvalidInput)

func errFieldNotOnForm() error {
	return goerror.NewInvalidInput(nil, "field", "field is not on this form")
}

// LoginInput applies one keystroke (or the visibility toggle) to the login form.
func (s *Usecase) LoginInput(ctx context.Context, in FormInput) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "LoginInput")
	defer span.End()

	return s.withSession(ctx, in.ID, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.LoginScreen); err != nil {
			return err
		}

		switch in.Field {
		case entity.FieldEmail:
			sess.login.SetEmail(in.Value)
		case entity.FieldPassword:
			sess.login.SetPassword(in.Value)
		case entity.FieldPasswordVisibility:
			sess.login.TogglePasswordVisibility()
		default:
			return errFieldNotOnForm()
		}

		return nil
	})
}

// LoginSubmit checks the form against the stored account and moves to
// HomeScreen on a match. On failure the form shows the error text.
func (s *Usecase) LoginSubmit(ctx context.Context, id string) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "LoginSubmit")
	defer span.End()

	return s.withSession(ctx, id, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.LoginScreen); err != nil {
			return err
		}
		if !sess.login.SubmitEnabled() {
			return errSubmitDisabled
		}

		if _, err := s.account.Login(ctx, accountuc.LoginInput{
			Email:    sess.login.Email,
			Password: sess.login.Password,
		}); err != nil {
			sess.login.ErrorText = screenMessage(err, accountentity.MsgErrorLogin)
			return err
		}

		slog.InfoContext(ctx, "login succeeded", "session_id", sess.id)

		return s.goTo(ctx, sess, entity.HomeScreen, entity.TriggerLogin)
	})
}

// RegisterInput applies one keystroke (or the visibility toggle) to the
// register form.
func (s *Usecase) RegisterInput(ctx context.Context, in FormInput) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "RegisterInput")
	defer span.End()

	return s.withSession(ctx, in.ID, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.RegisterScreen); err != nil {
			return err
		}

		switch in.Field {
		case entity.FieldName:
			sess.register.SetName(in.Value)
		case entity.FieldEmail:
			sess.register.SetEmail(in.Value)
		case entity.FieldPassword:
			sess.register.SetPassword(in.Value)
		case entity.FieldPasswordVisibility:
			sess.register.TogglePasswordVisibility()
		default:
			return errFieldNotOnForm()
		}

		return nil
	})
}

// RegisterSubmit stores the account and moves to OtpScreen.
func (s *Usecase) RegisterSubmit(ctx context.Context, id string) (*entity.Snapshot, error) {
	ctx, span := s.startSpan(ctx, "RegisterSubmit")
	defer span.End()

	return s.withSession(ctx, id, func(sess *session) error {
		if err := requireScreen(ctx, sess, entity.RegisterScreen); err != nil {
			return err
		}
		if !sess.register.SubmitEnabled() {
			return errSubmitDisabled
		}

		sess.register.ErrorText = ""
		if err := s.account.Register(ctx, accountuc.RegisterInput{
			Name:     sess.register.Name,
			Email:    sess.register.Email,
			Password: sess.register.Password,
		}); err != nil {
			sess.register.ErrorText = screenMessage(err, accountentity.MsgErrorRegister)
			return err
		}

		slog.InfoContext(ctx, "registration stored", "session_id", sess.id)

		return s.goTo(ctx, sess, entity.OtpScreen, entity.TriggerRegister)
	})
}
