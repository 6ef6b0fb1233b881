package usecase

import (
	"context"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoKV interface {
	SaveCredential(ctx context.Context, c entity.Credential) error
	GetCredential(ctx context.Context) (*entity.Credential, error)
	ClearCredential(ctx context.Context) error
}

type Usecase struct {
	repoKV    repoKV
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoKV     repoKV
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoKV:    dep.RepoKV,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}
