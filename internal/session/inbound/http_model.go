package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/ayola/internal/session/entity"
)

type NavigateRequest struct {
	Screen string `json:"screen"`
}

type FormInputRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type OtpDigitRequest struct {
	Digit string `json:"digit"`
}

type LoginFormView struct {
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	PasswordSet   bool   `json:"password_set"`
	ShowPassword  bool   `json:"show_password"`
	ErrorText     string `json:"error_text,omitempty"`
	SubmitEnabled bool   `json:"submit_enabled"`
}

type RegisterFormView struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	PasswordSet   bool   `json:"password_set"`
	ShowPassword  bool   `json:"show_password"`
	ErrorText     string `json:"error_text,omitempty"`
	SubmitEnabled bool   `json:"submit_enabled"`
}

type OtpView struct {
	Cells      []string `json:"cells"`
	ActiveCell int      `json:"active_cell"`
	Countdown  int      `json:"countdown"`
	ErrorText  string   `json:"error_text,omitempty"`
	Loading    bool     `json:"loading"`
	Phase      string   `json:"phase"`
}

type SessionResponse struct {
	ID        string            `json:"id"`
	Screen    string            `json:"screen"`
	FocusCell int               `json:"focus_cell"`
	CreatedAt time.Time         `json:"created_at"`
	Login     *LoginFormView    `json:"login,omitempty"`
	Register  *RegisterFormView `json:"register,omitempty"`
	Otp       *OtpView          `json:"otp,omitempty"`

	status int
}

func (r SessionResponse) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// visiblePassword hides the password unless the screen shows it in clear.
func visiblePassword(password string, show bool) string {
	if show {
		return password
	}
	return ""
}

// newSessionResponse renders the form of the active screen only.
func newSessionResponse(s *entity.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID:        s.ID,
		Screen:    s.Screen.String(),
		FocusCell: s.FocusCell,
		CreatedAt: s.CreatedAt,
	}

	switch s.Screen {
	case entity.LoginScreen:
		resp.Login = &LoginFormView{
			Email:         s.Login.Email,
			Password:      visiblePassword(s.Login.Password, s.Login.ShowPassword),
			PasswordSet:   s.Login.Password != "",
			ShowPassword:  s.Login.ShowPassword,
			ErrorText:     s.Login.ErrorText,
			SubmitEnabled: s.Login.SubmitEnabled(),
		}
	case entity.RegisterScreen:
		resp.Register = &RegisterFormView{
			Name:          s.Register.Name,
			Email:         s.Register.Email,
			Password:      visiblePassword(s.Register.Password, s.Register.ShowPassword),
			PasswordSet:   s.Register.Password != "",
			ShowPassword:  s.Register.ShowPassword,
			ErrorText:     s.Register.ErrorText,
			SubmitEnabled: s.Register.SubmitEnabled(),
		}
	}

	if s.Otp != nil {
		resp.Otp = &OtpView{
			Cells:      s.Otp.Cells,
			ActiveCell: s.Otp.ActiveCell,
			Countdown:  s.Otp.Countdown,
			ErrorText:  s.Otp.ErrorText,
			Loading:    s.Otp.Loading,
			Phase:      s.Otp.Phase.String(),
		}
	}

	return resp
}
