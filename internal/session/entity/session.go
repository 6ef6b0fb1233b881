package entity

import (
	"time"

	"github.com/shandysiswandi/ayola/internal/otpentry"
)

// Snapshot is a read-only copy of one front-end session.
type Snapshot struct {
	ID        string
	Screen    Screen
	Login     LoginForm
	Register  RegisterForm
	Otp       *otpentry.State // set only on OtpScreen
	FocusCell int
	CreatedAt time.Time
}
