package account

import (
	"github.com/shandysiswandi/ayola/internal/account/inbound"
	"github.com/shandysiswandi/ayola/internal/account/outbound/kv"
	"github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/kvstore"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
)

type Dependency struct {
	Store      kvstore.Store              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New wires the account module and returns its usecase so other modules can
// drive login and registration directly.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	repoKV := kv.NewKV(dep.Store, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoKV:     repoKV,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
