package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/testutil"
)

func TestProviderFactoryBuildsWithDefaultInterval(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov, closer := factory.build(config.Config{Slate: config.SlateConfig{Source: config.SourceFixture}})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if closer != nil {
		t.Fatalf("expected no closer for fixture source")
	}

	slate, err := prov.FetchSlate(context.Background())
	if err != nil || len(slate.Games) == 0 {
		t.Fatalf("expected fixture slate through wrappers, got %+v err %v", slate, err)
	}
	if rec.SourceCalls(config.SourceFixture) != 1 {
		t.Fatalf("expected retry wrapper to record one fixture call, got %d", rec.SourceCalls(config.SourceFixture))
	}
}

func TestNormalizeSourceName(t *testing.T) {
	if got := normalizeSourceName("HTTP", nil); got != "http" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeSourceName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %s", got)
	}
	prov, _ := selectProvider(config.Config{Slate: config.SlateConfig{Source: config.SourceFixture}}, nil)
	if got := normalizeSourceName("", prov); got != "fixture" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeSourceName("  ", testutil.GoodProvider{}); got != "testutil" {
		t.Fatalf("expected package name for injected provider, got %s", got)
	}
}
