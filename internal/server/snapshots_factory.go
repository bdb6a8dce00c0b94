package server

import (
	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/poller"
	"github.com/preston-bernstein/nba-projection-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer poller.SnapshotWriter
}

// buildSnapshots returns the archive reader and writer, or zero components when archiving is off.
func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.Snapshots.Dir),
		writer: snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays),
	}
}
