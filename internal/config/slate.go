package config

import "strings"

// SlateConfig selects and configures the slate source.
type SlateConfig struct {
	Source    string
	File      string
	URL       string
	APIKey    string
	RateLimit Duration
	// Timezone decides "today" for sources that do not stamp a date.
	Timezone string
	Redis    RedisConfig
}

// RedisConfig addresses the redis slate source.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

func loadSlate() SlateConfig {
	return SlateConfig{
		Source:    strings.ToLower(envOrDefault(envSlateSource, defaultSlateSource)),
		File:      envOrDefault(envSlateFile, defaultSlateFile),
		URL:       envOrDefault(envSlateURL, ""),
		APIKey:    envOrDefault(envSlateAPIKey, ""),
		RateLimit: durationEnvOrDefault(envSlateRateLimit, defaultSlateRateLimit),
		Timezone:  envOrDefault(envSlateTimezone, defaultSlateTimezone),
		Redis: RedisConfig{
			Addr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			Password: envOrDefault(envRedisPassword, ""),
			DB:       nonNegativeIntEnvOrDefault(envRedisDB, 0),
			Key:      envOrDefault(envSlateRedisKey, defaultSlateRedisKey),
		},
	}
}
