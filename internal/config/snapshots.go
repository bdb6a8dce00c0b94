package config

// SnapshotsConfig controls archiving of refreshed slates.
type SnapshotsConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:       boolEnvOrDefault(envSnapshotsOn, defaultSnapshotsOn),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetain, defaultSnapshotRetain),
	}
}
