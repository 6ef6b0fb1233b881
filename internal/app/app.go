package app

import (
	"context"
	"net/http"

	accountuc "github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/config"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/kvstore"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/pkg/uid"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
	sessionuc "github.com/shandysiswandi/ayola/internal/session/usecase"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	verifier  otp.Verifier

	// resources
	kvstore kvstore.Store

	// modules
	accountUC *accountuc.Usecase
	sessionUC *sessionuc.Usecase

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initKVStore()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
