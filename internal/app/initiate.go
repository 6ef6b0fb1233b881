package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
	"github.com/shandysiswandi/ayola/internal/pkg/config"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/kvstore"
	"github.com/shandysiswandi/ayola/internal/pkg/otp"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/pkg/uid"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	driver := strings.TrimSpace(a.config.GetString("otp.driver"))
	verifier, err := otp.NewFromDriver(driver, otp.Options{
		StaticCode: a.config.GetString("otp.static.code"),
		Secret:     a.config.GetString("otp.totp.secret"),
		Period:     a.config.GetUint("otp.totp.period"),
		Skew:       a.config.GetUint("otp.totp.skew"),
		Clock:      a.clock,
	})
	if err != nil {
		slog.Error("failed to init otp verifier", "error", err, "driver", driver)
		os.Exit(1)
	}
	a.verifier = verifier
}

func (a *App) initKVStore() {
	driver := strings.TrimSpace(a.config.GetString("kvstore.driver"))
	store, err := kvstore.NewFromDriver(a.ctx, driver, kvstore.FactoryOptions{
		RedisURL:   a.config.GetString("kvstore.redis.url"),
		SQLitePath: a.config.GetString("kvstore.sqlite.path"),
	})
	if err != nil {
		slog.Error("failed to init kvstore", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.kvstore = store
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Sessions",
			fn: func(ctx context.Context) error {
				if a.sessionUC == nil {
					return nil
				}

				return a.sessionUC.CloseAll(ctx)
			},
		},
		{
			name: "KVStore",
			fn: func(context.Context) error {
				return a.kvstore.Close()
			},
		},
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
