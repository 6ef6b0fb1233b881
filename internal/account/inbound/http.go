package inbound

import (
	"context"

	"github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	ValidateCredential(ctx context.Context, in usecase.ValidateInput) (*usecase.ValidateOutput, error)
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	Forget(ctx context.Context) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/account/register", end.Register)
	r.POST("/api/v1/account/login", end.Login)
	r.POST("/api/v1/account/validate", end.Validate)
	r.GET("/api/v1/account/profile", end.Profile)
	r.DELETE("/api/v1/account/credential", end.Forget)
}
