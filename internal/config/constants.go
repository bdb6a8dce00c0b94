package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envPlayersFile    = "PLAYERS_FILE"
	envDvpFile        = "DVP_FILE"
	envSlateSource    = "SLATE_SOURCE"
	envSlateFile      = "SLATE_FILE"
	envSlateURL       = "SLATE_URL"
	envSlateAPIKey    = "SLATE_API_KEY"
	envSlateRateLimit = "SLATE_RATE_LIMIT"
	envSlateTimezone  = "SLATE_TIMEZONE"
	envRedisAddr      = "REDIS_ADDR"
	envRedisPassword  = "REDIS_PASSWORD"
	envRedisDB        = "REDIS_DB"
	envSlateRedisKey  = "SLATE_REDIS_KEY"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken     = "ADMIN_TOKEN"
	envSnapshotsOn    = "SNAPSHOTS_ENABLED"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envSnapshotRetain = "SNAPSHOT_RETENTION_DAYS"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	// ServiceName names the service in logs and telemetry.
	ServiceName = "nba-projection-service"

	defaultPort         = "4000"
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultPlayersFile  = "data/players.csv"
	defaultDvpFile      = "data/dvp.csv"
	defaultSlateSource  = SourceFile
	defaultSlateFile    = "data/slate.yaml"
	// Minimum spacing between upstream slate fetches; slates change a few times a day at most.
	defaultSlateRateLimit = Duration(time.Minute)
	defaultSlateTimezone  = "America/New_York"
	defaultRedisAddr      = "localhost:6379"
	defaultSlateRedisKey  = "slate:current"
	defaultMetricsPort    = "9090"
	defaultSnapshotsOn    = true
	defaultSnapshotDir    = "data/snapshots"
	defaultSnapshotRetain = 14
)

// Slate source names accepted by SLATE_SOURCE.
const (
	SourceFile    = "file"
	SourceHTTP    = "http"
	SourceRedis   = "redis"
	SourceFixture = "fixture"
)
