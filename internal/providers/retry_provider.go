package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a SlateProvider with retry/backoff behavior and records per-attempt metrics.
type retryingProvider struct {
	inner        SlateProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	rng          *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner SlateProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) SlateProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an injectable jitter source.
func NewRetryingProviderWithRNG(inner SlateProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) SlateProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		rng:          rng,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	if r.inner == nil {
		return games.Slate{}, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		slate, err := r.inner.FetchSlate(ctx)
		r.metrics.RecordSourceAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return slate, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			if IsNoWait(ctx) {
				return games.Slate{}, err
			}
		}

		if attempt == r.maxAttempts {
			break
		}

		logging.LogSource(ctx, r.logger, slog.LevelWarn, r.providerName, "slate fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.computeDelay(err, attempt)
		select {
		case <-ctx.Done():
			return games.Slate{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logging.LogSource(ctx, r.logger, slog.LevelWarn, r.providerName, "slate fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return games.Slate{}, lastErr
}

// computeDelay honors Retry-After for rate limits and otherwise jitters the backoff into [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	return half + time.Duration(r.rng.Int63n(int64(base-half)+1))
}
