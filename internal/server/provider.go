package server

import (
	"io"
	"log/slog"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/file"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/httpslate"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/redis"
)

// selectProvider builds the base slate source. The returned closer, when non-nil,
// releases connections held by the source and is closed at shutdown.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.SlateProvider, io.Closer) {
	slate := cfg.Slate
	switch slate.Source {
	case config.SourceFile, "":
		return file.New(slate.File, slate.Timezone), nil
	case config.SourceHTTP:
		return httpslate.NewClient(httpslate.Config{
			URL:      slate.URL,
			APIKey:   slate.APIKey,
			Timezone: slate.Timezone,
		}), nil
	case config.SourceRedis:
		client := redis.NewClient(redis.Config{
			Addr:     slate.Redis.Addr,
			Password: slate.Redis.Password,
			DB:       slate.Redis.DB,
		})
		return redis.New(client, slate.Redis.Key, slate.Timezone), client
	case config.SourceFixture:
		return fixture.New(), nil
	default:
		logging.Warn(logger, "unknown slate source, falling back to fixture", slog.String(logging.FieldSource, slate.Source))
		return fixture.New(), nil
	}
}
