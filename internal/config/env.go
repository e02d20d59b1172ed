package config

import (
	"os"
	"strconv"
	"strings"
)

// LoadFromEnv overrides configuration from environment variables
func LoadFromEnv(cfg *Config) {
	if level := os.Getenv("TOYVEC_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if format := os.Getenv("TOYVEC_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}

	if enabled := os.Getenv("TOYVEC_METRICS_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			cfg.Metrics.Enabled = b
		}
	}

	if capacity := os.Getenv("TOYVEC_INITIAL_CAPACITY"); capacity != "" {
		if n, err := strconv.Atoi(capacity); err == nil {
			cfg.Demo.InitialCapacity = n
		}
	}

	// Comma separated
	if values := os.Getenv("TOYVEC_VALUES"); values != "" {
		cfg.Demo.Values = strings.Split(values, ",")
	}
}

// GetEnvOrDefault returns environment variable or default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
