// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress       string
	StaticDir         string
	CatalogPath       string // Optional YAML seed file; empty selects the built-in catalog.
	KafkaBrokers      []string
	RosterEventsTopic string
	PublishTimeout    time.Duration
	LogLevel          string
	LogFormat         string
}

// EventsEnabled reports whether roster events should be published.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:         getEnv("STATIC_DIR", "./static"),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		RosterEventsTopic: getEnv("ROSTER_EVENTS_TOPIC", "activity_roster_events"),
		PublishTimeout:    getDurationEnv("PUBLISH_TIMEOUT", 2*time.Second),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	// No default broker: local dev runs without Kafka.
	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
