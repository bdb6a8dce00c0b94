package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port         string
	PollInterval Duration
	LogLevel     string
	LogFormat    string
	AdminToken   string
	Tables       TablesConfig
	Slate        SlateConfig
	Snapshots    SnapshotsConfig
	Metrics      MetricsConfig
}

// TablesConfig points at the reference tables.
type TablesConfig struct {
	PlayersFile string
	DvpFile     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		LogLevel:     envOrDefault(envLogLevel, "info"),
		LogFormat:    envOrDefault(envLogFormat, "text"),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Tables: TablesConfig{
			PlayersFile: envOrDefault(envPlayersFile, defaultPlayersFile),
			DvpFile:     envOrDefault(envDvpFile, defaultDvpFile),
		},
		Slate:     loadSlate(),
		Snapshots: loadSnapshots(),
		Metrics:   loadMetrics(),
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding anything already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
