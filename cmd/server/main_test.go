package main

import (
	"context"
	"path/filepath"
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so test binaries never block.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsWithoutReferenceTables(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLAYERS_FILE", filepath.Join(dir, "missing-players.csv"))
	t.Setenv("DVP_FILE", filepath.Join(dir, "missing-dvp.csv"))
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := run(ctx, cancel); err == nil {
		t.Fatalf("expected startup error for missing tables")
	}
}
