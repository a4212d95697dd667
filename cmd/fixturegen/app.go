package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fourtreestech/ilc-models/fixtures"
	"github.com/fourtreestech/ilc-models/internal/config"
	"github.com/fourtreestech/ilc-models/internal/dataset"
	"github.com/fourtreestech/ilc-models/internal/logging"
	"github.com/fourtreestech/ilc-models/internal/metrics"
)

var metricsSetup = metrics.Setup

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// App wires configuration, telemetry and the dataset builder into a single run.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	recorder      *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// newApp constructs the application with default telemetry wiring.
func newApp(cfg config.Config, logger *slog.Logger) *App {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	return &App{
		cfg:           cfg,
		logger:        logger,
		recorder:      recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.OtelEnabled,
		ServiceName:    cfg.Metrics.ServiceName,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
		ExportInterval: cfg.Metrics.ExportInterval,
	}

	recorder, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && cfg.Metrics.Addr != "" {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:         cfg.Metrics.Addr,
				Handler:      handler,
				ReadTimeout:  readTimeout,
				WriteTimeout: writeTimeout,
			},
		}
	}

	return recorder, metricsSrv, shutdown
}

// Run generates the dataset and writes it to the configured output, serving
// the metrics endpoint for the duration of the run when one is configured.
func (a *App) Run(ctx context.Context) error {
	a.startMetrics()
	defer a.shutdown()

	builder := dataset.Builder{
		Factory:      a.newSource,
		Seed:         a.cfg.Seed,
		Matches:      a.cfg.Matches,
		TableSize:    a.cfg.TableSize,
		Workers:      a.cfg.Workers,
		SquadSize:    a.cfg.SquadSize,
		SquadKeepers: a.cfg.SquadKeepers,
	}

	logging.Info(a.logger, "dataset build starting",
		slog.Int64(logging.FieldSeed, a.cfg.Seed),
		slog.Int(logging.FieldMatches, a.cfg.Matches),
		slog.Int(logging.FieldTableSize, a.cfg.TableSize),
		slog.Int(logging.FieldWorkers, a.cfg.Workers),
	)

	start := time.Now()
	ds, err := builder.Build(ctx)
	a.recorder.RecordDataset(time.Since(start), err)
	if err != nil {
		return err
	}

	if err := dataset.Write(ds, a.cfg.Output); err != nil {
		return err
	}

	logging.Info(a.logger, "dataset written",
		slog.Int64(logging.FieldSeed, ds.Seed),
		slog.Int(logging.FieldCount, len(ds.Matches)),
		slog.String(logging.FieldOutput, a.cfg.Output),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// newSource builds one fixture source with logging and metrics wrapped around it.
func (a *App) newSource(seed int64) dataset.Source {
	var src dataset.Source = fixtures.New(seed)
	src = dataset.NewLoggingSource(src, a.logger)
	return dataset.NewMetricsSource(src, a.recorder)
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	logging.Info(a.logger, "metrics server starting", slog.String("addr", a.metricsServer.Addr()))
	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(a.logger, "metrics server failed", "error", err)
		}
	}()
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", err)
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", "error", err)
		}
	}
}
