package server

import (
	"io"
	"log/slog"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.SlateProvider, io.Closer) {
	base, closer := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base), closer
}

// wrap applies the shared rate limiter and retry policy around base.
func (f providerFactory) wrap(cfg config.Config, base providers.SlateProvider) providers.SlateProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Slate.RateLimit, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeSourceName(cfg.Slate.Source, base), 0, 0)
}
