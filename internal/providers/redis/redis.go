// Package redis reads the slate from a JSON document stored at a redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// Name identifies this source in logs and metrics.
const Name = "redis"

// Getter is the slice of the redis client the provider needs.
type Getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

// Config addresses the redis instance and key.
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Timezone string
}

// Provider reads the current slate from redis.
type Provider struct {
	client   Getter
	key      string
	timezone string
	now      func() time.Time
}

// NewClient builds a go-redis client for the config.
func NewClient(cfg Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New wraps an existing client.
func New(client Getter, key, tz string) *Provider {
	return &Provider{
		client:   client,
		key:      key,
		timezone: tz,
		now:      time.Now,
	}
}

// FetchSlate loads and decodes the slate document. A missing key maps to providers.ErrSlateNotFound.
func (p *Provider) FetchSlate(ctx context.Context) (games.Slate, error) {
	if p.client == nil {
		return games.Slate{}, providers.ErrProviderUnavailable
	}
	raw, err := p.client.Get(ctx, p.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return games.Slate{}, fmt.Errorf("redis key %q: %w", p.key, providers.ErrSlateNotFound)
		}
		return games.Slate{}, fmt.Errorf("redis get %q: %w", p.key, err)
	}

	var slate games.Slate
	if err := json.Unmarshal(raw, &slate); err != nil {
		return games.Slate{}, fmt.Errorf("decode redis slate: %w", err)
	}
	return providers.NormalizeSlate(slate, Name, providers.SlateDate(p.now(), p.timezone)), nil
}
