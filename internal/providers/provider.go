// Package providers defines slate sources and the decorators that wrap them.
package providers

import (
	"context"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
)

// SlateProvider fetches the current slate of games from an upstream source.
type SlateProvider interface {
	FetchSlate(ctx context.Context) (games.Slate, error)
}

// SlateProviderFunc adapts a function to SlateProvider.
type SlateProviderFunc func(ctx context.Context) (games.Slate, error)

// FetchSlate calls f(ctx).
func (f SlateProviderFunc) FetchSlate(ctx context.Context) (games.Slate, error) {
	return f(ctx)
}
