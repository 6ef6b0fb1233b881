package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/ayola/internal/account"
	"github.com/shandysiswandi/ayola/internal/session"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.account.enabled") {
		uc, err := account.New(account.Dependency{
			Store:      a.kvstore,
			Router:     a.router,
			Instrument: a.ins,
			Validator:  a.validator,
		})
		if err != nil {
			slog.Error("failed to init module account", "error", err)
			os.Exit(1)
		}
		a.accountUC = uc
	}

	// screens drive login and registration through the account usecase
	if a.config.GetBool("modules.session.enabled") {
		if a.accountUC == nil {
			slog.Error("failed to init module session", "error", "module account is disabled")
			os.Exit(1)
		}

		uc, err := session.New(session.Dependency{
			Account:    a.accountUC,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Verifier:   a.verifier,
			Clock:      a.clock,
			UUID:       a.uuid,
			Validator:  a.validator,
		})
		if err != nil {
			slog.Error("failed to init module session", "error", err)
			os.Exit(1)
		}
		a.sessionUC = uc
	}
}
