package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
)

// GoodProvider returns the provided slate with no error.
type GoodProvider struct {
	Slate games.Slate
}

func (p GoodProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	return p.Slate, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	return games.Slate{}, p.Err
}

// EmptyProvider returns an empty slate, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	return games.Slate{Games: []games.Game{}}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	return games.Slate{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns the slate and closes Notify on first fetch.
type NotifyingProvider struct {
	Slate  games.Slate
	Notify chan struct{}

	once sync.Once
}

func (p *NotifyingProvider) FetchSlate(ctx context.Context) (games.Slate, error) {
	_ = ctx
	if p.Notify != nil {
		p.once.Do(func() { close(p.Notify) })
	}
	return p.Slate, nil
}
