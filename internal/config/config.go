package config

import (
	"os"
	"time"
)

// Config holds the configuration for the agent
type Config struct {
	ServerURL        string
	AgentToken       string
	PingTarget       string
	ThroughputWindow time.Duration
}

// Load loads the configuration from environment variables or defaults.
// PingTarget and ThroughputWindow are left zero when unset so the collector
// falls back to its reference defaults.
func Load() *Config {
	return &Config{
		ServerURL:        getEnv("DEVINFO_SERVER_URL", "https://api.atlas-infra.dev/v1/reports"),
		AgentToken:       getEnv("DEVINFO_AGENT_TOKEN", ""),
		PingTarget:       getEnv("DEVINFO_PING_TARGET", ""),
		ThroughputWindow: getDurationEnv("DEVINFO_THROUGHPUT_WINDOW", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
