// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/fluxcrew/lifecycle/internal/adapters/clients/docapi"
	"github.com/fluxcrew/lifecycle/internal/adapters/docstore"
	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/memory"
	"github.com/fluxcrew/lifecycle/internal/adapters/docstore/sqlite"
	"github.com/fluxcrew/lifecycle/internal/adapters/events"
	adapthttp "github.com/fluxcrew/lifecycle/internal/adapters/http"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/handlers"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/middleware"

	"github.com/fluxcrew/lifecycle/internal/app"
	"github.com/fluxcrew/lifecycle/internal/platform/config"
	"github.com/fluxcrew/lifecycle/internal/platform/health"
	"github.com/fluxcrew/lifecycle/internal/platform/httpclient"
	"github.com/fluxcrew/lifecycle/internal/platform/logging"
	"github.com/fluxcrew/lifecycle/internal/platform/scheduler"
	"github.com/fluxcrew/lifecycle/internal/platform/telemetry"
	"github.com/fluxcrew/lifecycle/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, test, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	backend := do.MustInvoke[*storeBackend](injector)
	if backend.checker != nil {
		registry.Register(backend.checker)
	}
	sched := do.MustInvoke[*scheduler.Scheduler](injector)
	registry.Register(sched)

	// Re-arm persisted timers once every timer kind has its handler.
	if cfg.Lifecycle.RestoreTimers {
		timers := do.MustInvoke[*app.TimerService](injector)
		armed, err := timers.Restore(ctx)
		if err != nil {
			return fmt.Errorf("restoring timers: %w", err)
		}
		logger.Info("restored timers", slog.Int("count", armed))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Error("scheduler shutdown error", slog.Any("error", err))
	}
	if err := backend.close(); err != nil {
		logger.Error("document store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// storeBackend is the document store selected by store.driver, with its
// health checker and release hook.
type storeBackend struct {
	docs    ports.DocumentStore
	checker ports.HealthChecker
	close   func() error
}

func openStore(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storeBackend, error) {
	switch cfg.Store.Driver {
	case "memory":
		return &storeBackend{docs: memory.New(), close: func() error { return nil }}, nil
	case "sqlite":
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &storeBackend{docs: s, checker: s, close: s.Close}, nil
	case "remote":
		client := docapi.NewClient(httpclient.New(&cfg.Client, "document-api", metrics, logger), logger)
		return &storeBackend{docs: client, checker: client, close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storeBackend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openStore(context.Background(), cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentStore, error) {
		backend := do.MustInvoke[*storeBackend](i)
		return docstore.WithTimeout(backend.docs, cfg.Store.OpTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*scheduler.Scheduler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return scheduler.New(
			scheduler.WithLogger(logger),
			scheduler.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*events.Hub, error) {
		return events.NewHub(logger,
			events.WithSendBuffer(cfg.Events.SendBuffer),
			events.WithPingInterval(cfg.Events.PingInterval),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		return do.MustInvoke[*events.Hub](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TimerService, error) {
		docs := do.MustInvoke[ports.DocumentStore](i)
		sched := do.MustInvoke[*scheduler.Scheduler](i)
		return app.NewTimerService(docs, sched, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ProjectStore, error) {
		return app.NewProjectStore(do.MustInvoke[ports.DocumentStore](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.PointsLedger, error) {
		docs := do.MustInvoke[ports.DocumentStore](i)
		store := do.MustInvoke[*app.ProjectStore](i)
		return app.NewPointsLedger(docs, store, cfg.Lifecycle.LeaderboardPageSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LifecycleService, error) {
		return app.NewLifecycleController(
			do.MustInvoke[*app.ProjectStore](i),
			do.MustInvoke[*app.PointsLedger](i),
			do.MustInvoke[*app.TimerService](i),
			do.MustInvoke[ports.EventPublisher](i),
			app.LifecycleConfig{
				DecayPercent:    cfg.Lifecycle.DecayPercent,
				MinDecayedValue: cfg.Lifecycle.MinDecayedValue,
			},
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PointsService, error) {
		return do.MustInvoke[*app.PointsLedger](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReminderService, error) {
		return app.NewReminderService(
			do.MustInvoke[ports.DocumentStore](i),
			do.MustInvoke[*app.TimerService](i),
			do.MustInvoke[ports.EventPublisher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		hub := do.MustInvoke[*events.Hub](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Lifecycle: handlers.NewLifecycleHandler(do.MustInvoke[ports.LifecycleService](i)),
			Points:    handlers.NewPointsHandler(do.MustInvoke[ports.PointsService](i)),
			Reminders: handlers.NewReminderHandler(do.MustInvoke[ports.ReminderService](i)),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Events:    events.NewHandler(hub, cfg.Events.AllowedOrigins, logger),
		}, cfg.Server.WriteTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Member(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		server := adapthttp.NewServer(cfg.Server, handler, logger)
		// Shutdown does not drain upgraded websocket connections.
		server.OnShutdown(do.MustInvoke[*events.Hub](i).Close)
		return server, nil
	})
}
