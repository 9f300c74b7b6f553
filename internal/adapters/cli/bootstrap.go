package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/oktaorginfo/internal/app"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/clipboard"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/config"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/httpclient"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/logging"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/telemetry"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

const (
	// downstreamName identifies the well-known endpoint in traces and metrics.
	downstreamName = "okta-wellknown"

	otelShutdownTimeout = 5 * time.Second
)

// runtime is the wired dependency graph for one command invocation.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	injector *do.RootScope
	otel     *otelProviders
	closeLog func() error
}

// bootstrap loads configuration, builds the logger and telemetry, and wires
// the dependency container. Interactive runs never log to the terminal: they
// log to log.file or nowhere.
func bootstrap(ctx context.Context, configPath string, overrides map[string]any, interactive bool, stderr io.Writer) (*runtime, error) {
	cfg, err := config.Load(config.WithFile(configPath), config.WithOverrides(overrides))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallback := stderr
	if interactive {
		fallback = io.Discard
	}
	w, closeLog, err := logging.Output(cfg.Log.File, fallback)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, w)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		injector: injector,
		otel:     otel,
		closeLog: closeLog,
	}, nil
}

// orgInfoService resolves the service, wiring the full outbound graph.
func (r *runtime) orgInfoService() (ports.OrgInfoService, error) {
	svc, err := do.Invoke[ports.OrgInfoService](r.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving org info service: %w", err)
	}
	return svc, nil
}

// Close flushes telemetry and closes the log file.
func (r *runtime) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	var errs []error
	if err := r.otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
	}
	if err := r.closeLog(); err != nil {
		errs = append(errs, fmt.Errorf("closing log: %w", err))
	}
	return errors.Join(errs...)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, downstreamName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrgInfoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewOrgInfoClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrgInfoService, error) {
		client := do.MustInvoke[ports.OrgInfoClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewOrgInfoService(client, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Clipboard, error) {
		return clipboard.System{}, nil
	})
}
