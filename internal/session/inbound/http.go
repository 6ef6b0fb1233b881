package inbound

import (
	"context"

	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/session/entity"
	"github.com/shandysiswandi/ayola/internal/session/usecase"
)

type uc interface {
	Start(ctx context.Context) (*entity.Snapshot, error)
	Get(ctx context.Context, id string) (*entity.Snapshot, error)
	Close(ctx context.Context, id string) error

	Navigate(ctx context.Context, in usecase.NavigateInput) (*entity.Snapshot, error)
	Logout(ctx context.Context, id string) (*entity.Snapshot, error)

	LoginInput(ctx context.Context, in usecase.FormInput) (*entity.Snapshot, error)
	LoginSubmit(ctx context.Context, id string) (*entity.Snapshot, error)
	RegisterInput(ctx context.Context, in usecase.FormInput) (*entity.Snapshot, error)
	RegisterSubmit(ctx context.Context, id string) (*entity.Snapshot, error)

	OtpDigit(ctx context.Context, in usecase.OtpDigitInput) (*entity.Snapshot, error)
	OtpBackspace(ctx context.Context, in usecase.OtpBackspaceInput) (*entity.Snapshot, error)
	OtpResend(ctx context.Context, id string) (*entity.Snapshot, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/sessions", end.Start)
	r.GET("/api/v1/sessions/:id", end.Get)
	r.DELETE("/api/v1/sessions/:id", end.Close)

	r.POST("/api/v1/sessions/:id/navigate", end.Navigate)
	r.POST("/api/v1/sessions/:id/logout", end.Logout)

	r.PUT("/api/v1/sessions/:id/login", end.LoginInput)
	r.POST("/api/v1/sessions/:id/login/submit", end.LoginSubmit)
	r.PUT("/api/v1/sessions/:id/register", end.RegisterInput)
	r.POST("/api/v1/sessions/:id/register/submit", end.RegisterSubmit)

	r.PUT("/api/v1/sessions/:id/otp/cells/:index", end.OtpDigit)
	r.DELETE("/api/v1/sessions/:id/otp/cells/:index", end.OtpBackspace)
	r.POST("/api/v1/sessions/:id/otp/resend", end.OtpResend)
}
