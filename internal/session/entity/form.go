package entity

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/ayola/internal/pkg/credential"
)

// Field names an editable form input.
type Field string

const (
	FieldName               Field = "name"
	FieldEmail              Field = "email"
	FieldPassword           Field = "password"
	FieldPasswordVisibility Field = "password_visibility"
)

var ErrUnknownField = errors.New("unknown field")

func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldPassword, FieldPasswordVisibility:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// LoginForm holds the login screen inputs. Email and password keystrokes
// share one error text, so the last field edited decides it.
type LoginForm struct {
	Email        string
	Password     string
	ErrorText    string
	ShowPassword bool
}

func (f *LoginForm) SetEmail(text string) {
	f.Email = text
	f.ErrorText = credential.ValidateEmail(text).Message()
}

func (f *LoginForm) SetPassword(text string) {
	f.Password = text
	f.ErrorText = credential.ValidatePassword(text).Message()
}

func (f *LoginForm) TogglePasswordVisibility() {
	f.ShowPassword = !f.ShowPassword
}

// SubmitEnabled mirrors the button state: both fields set and no error shown.
func (f LoginForm) SubmitEnabled() bool {
	return credential.SubmitEnabled(f.ErrorText, f.Email, f.Password)
}

// Clear empties the inputs and the error text. Password visibility is kept.
func (f *LoginForm) Clear() {
	f.Email = ""
	f.Password = ""
	f.ErrorText = ""
}

// RegisterForm holds the register screen inputs.
type RegisterForm struct {
	Name         string
	Email        string
	Password     string
	ErrorText    string
	ShowPassword bool
}

// SetName does not touch the error text.
func (f *RegisterForm) SetName(text string) {
	f.Name = text
}

func (f *RegisterForm) SetEmail(text string) {
	f.Email = text
	f.ErrorText = credential.ValidateEmail(text).Message()
}

func (f *RegisterForm) SetPassword(text string) {
	f.Password = text
	f.ErrorText = credential.ValidatePassword(text).Message()
}

func (f *RegisterForm) TogglePasswordVisibility() {
	f.ShowPassword = !f.ShowPassword
}

func (f RegisterForm) SubmitEnabled() bool {
	return credential.SubmitEnabled(f.ErrorText, f.Name, f.Email, f.Password)
}
