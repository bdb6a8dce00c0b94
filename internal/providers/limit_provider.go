package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider wraps a SlateProvider and enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next    SlateProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a SlateProvider that allows one call per interval.
// The first call goes through immediately; later calls block until a token is available,
// unless ctx is marked WithoutWait, in which case they fail with a *RateLimitError.
func NewRateLimitedProvider(next SlateProvider, interval time.Duration, logger *slog.Logger) SlateProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	if p.next == nil {
		logging.LogSource(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		return games.Slate{}, ErrProviderUnavailable
	}
	if IsNoWait(ctx) {
		res := p.limiter.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			logging.LogSource(ctx, p.logger, slog.LevelInfo, rateLimitedName, "slate fetch rejected by rate limit", "retry_after", delay)
			return games.Slate{}, &RateLimitError{
				Source:     rateLimitedName,
				RetryAfter: delay,
				Message:    "slate fetched too recently",
			}
		}
		return p.next.FetchSlate(ctx)
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logging.LogSource(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return games.Slate{}, ctxErr
		}
		return games.Slate{}, err
	}
	logging.LogSource(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited slate fetch")
	return p.next.FetchSlate(ctx)
}
