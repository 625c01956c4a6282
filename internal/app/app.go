package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/audit"
	fieldrepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/field"
	labelrepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/label"
	samplerepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/sample"
	"github.com/heartmarshall/sampletracker-backend/internal/adapter/provider/labelprint"
	"github.com/heartmarshall/sampletracker-backend/internal/config"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
	"github.com/heartmarshall/sampletracker-backend/internal/service/field"
	"github.com/heartmarshall/sampletracker-backend/internal/service/label"
	"github.com/heartmarshall/sampletracker-backend/internal/service/sample"
	"github.com/heartmarshall/sampletracker-backend/internal/service/table"
	"github.com/heartmarshall/sampletracker-backend/internal/transport/dataloader"
	"github.com/heartmarshall/sampletracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/sampletracker-backend/internal/transport/rest"
)

// Database is what the application needs from the connection pool.
// Satisfied by *pgxpool.Pool.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// Run loads configuration, connects to the database and serves HTTP until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Table.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, err := NewHandler(cfg, logger, pool)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// NewHandler wires repositories, services and transport on top of db and
// returns the root HTTP handler with its middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, db Database) (http.Handler, error) {
	txm := postgres.NewTxManager(db)

	samples := samplerepo.New(db)
	fields := fieldrepo.New(db)
	labels := labelrepo.New(db)
	audits := auditrepo.New(db)

	fieldSvc := field.NewService(logger, fields, cfg.Registry.CacheTTL, cfg.Registry.CleanupInterval)
	sampleSvc := sample.NewService(logger, samples, audits, txm)
	renderer, printer := labelDelegates(cfg.Labels, logger)
	labelSvc := label.NewService(logger, labels, samples, txm, renderer, printer)
	tableSvc := table.NewService(logger, sampleSvc, dataloader.NewFieldSource(fieldSvc), grid.NewProjector(cfg.Table.Location, nil))

	handlers := rest.Handlers{
		Health:  rest.NewHealthHandler(db, BuildVersion()),
		Samples: rest.NewSampleHandler(sampleSvc, logger),
		Fields:  rest.NewFieldHandler(fieldSvc, logger),
		Labels:  rest.NewLabelHandler(labelSvc, logger),
		Table:   rest.NewTableHandler(tableSvc, logger),
	}

	var metrics middleware.Middleware
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		httpMetrics, err := middleware.NewHTTPMetrics(registry)
		if err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		metrics = middleware.Metrics(httpMetrics)
		handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{ErrorHandling: promhttp.HTTPErrorOnError})
		handlers.MetricsPath = cfg.Metrics.Path
	}

	// Metrics wraps the router directly so the matched pattern is visible to it.
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		dataloader.Middleware(fieldSvc),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		metrics,
	)
	return chain(rest.NewRouter(handlers)), nil
}

// labelDelegates returns the external renderer and printer, leaving either
// nil when its URL is not configured.
func labelDelegates(cfg config.LabelsConfig, logger *slog.Logger) (label.Renderer, label.Printer) {
	var (
		renderer label.Renderer
		printer  label.Printer
	)
	if cfg.RendererURL != "" {
		renderer = labelprint.NewRenderer(cfg.RendererURL, cfg.Timeout, logger)
	} else {
		logger.Warn("label renderer not configured; generate is unavailable")
	}
	if cfg.PrinterURL != "" {
		printer = labelprint.NewPrinter(cfg.PrinterURL, cfg.Timeout, logger)
	} else {
		logger.Warn("label printer not configured; print is unavailable")
	}
	return renderer, printer
}
