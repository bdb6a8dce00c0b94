package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// loadMetrics defaults OTLP to plaintext unless the endpoint is https.
func loadMetrics() MetricsConfig {
	endpoint := strings.TrimSpace(envOrDefault(envOtelEndpoint, ""))
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, !strings.HasPrefix(strings.ToLower(endpoint), "https://")),
	}
}
