package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-projection-service/internal/http"
	"github.com/preston-bernstein/nba-projection-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-projection-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/poller"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
	"github.com/preston-bernstein/nba-projection-service/internal/store"
	"github.com/preston-bernstein/nba-projection-service/internal/tables"
)

var (
	metricsSetup = metrics.Setup
	loadTables   = tables.Load
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	services      handlers.Services
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closers       []io.Closer
}

// New loads the reference tables and constructs a server with the configured slate source.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	ref, err := loadTables(cfg.Tables.PlayersFile, cfg.Tables.DvpFile)
	if err != nil {
		return nil, fmt.Errorf("reference tables: %w", err)
	}
	logging.Info(logger, "reference tables loaded",
		slog.Int("players", ref.Players.Len()),
		slog.Int("dvp_teams", ref.DvP.Len()),
	)
	return newServerWithMetrics(cfg, logger, ref, nil, nil), nil
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, ref tables.Reference, source providers.SlateProvider) *Server {
	return newServerWithMetrics(cfg, logger, ref, source, nil)
}

// newServerWithMetrics builds the full component graph. A nil source selects one from cfg;
// an injected source skips the rate limiter.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, ref tables.Reference, source providers.SlateProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var (
		provider providers.SlateProvider
		closers  []io.Closer
	)
	if source == nil {
		var closer io.Closer
		provider, closer = newProviderFactory(logger, recorder).build(cfg)
		if closer != nil {
			closers = append(closers, closer)
		}
	} else {
		provider = providers.NewRetryingProvider(source, logger, recorder, normalizeSourceName(cfg.Slate.Source, source), 0, 0)
	}

	snaps := buildSnapshots(cfg)
	memoryStore, services := buildServices(ref, snaps.store, recorder)
	plr := poller.New(provider, memoryStore, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, services, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		services:      services,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		closers:       closers,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, services handlers.Services, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var (
		statusFn func() poller.Status
		admin    *handlers.AdminHandler
	)
	if plr != nil {
		statusFn = plr.Status
	}
	// The admin route is only mounted when a token is configured.
	if cfg.AdminToken != "" && plr != nil {
		admin = handlers.NewAdminHandler(plr, cfg.AdminToken, logger)
	}

	handler := handlers.NewHandler(services, logger, statusFn)
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logging.Warn(s.logger, "slate source close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
