package session

import (
	accountuc "github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/config"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/pkg/uid"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
	"github.com/shandysiswandi/ayola/internal/session/inbound"
	"github.com/shandysiswandi/ayola/internal/session/usecase"
)

type Dependency struct {
	Account    *accountuc.Usecase         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Verifier   otp.Verifier               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New wires the session module. The returned usecase must be torn down with
// CloseAll on shutdown so no screen timer outlives the server.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		Account:    dep.Account,
		Verifier:   dep.Verifier,
		Clock:      dep.Clock,
		UUID:       dep.UUID,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
