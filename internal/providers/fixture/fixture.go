package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// Name identifies this source in logs and metrics.
const Name = "fixture"

// Provider returns a static slate useful for local testing and bootstrapping.
type Provider struct {
	now      func() time.Time
	timezone string
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now:      time.Now,
		timezone: providers.DefaultTimezone,
	}
}

// FetchSlate returns a deterministic two-game slate dated today.
func (p *Provider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx

	return games.NewSlate(providers.SlateDate(p.now(), p.timezone), Name, []games.Game{
		{Team1: "BOS", Team2: "LAL", Spread1: -6.5, Spread2: 6.5, Total: 229.5},
		{Team1: "GSW", Team2: "MIA", Spread1: -11, Spread2: 11, Total: 218},
	}), nil
}
