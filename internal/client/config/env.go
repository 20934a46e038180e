package config

import (
	"os"
	"time"
)

// Environment variable names recognized by parseEnv.
const (
	EnvAPIBaseURL     = "CPPHUB_API_BASE_URL"
	EnvRequestTimeout = "CPPHUB_REQUEST_TIMEOUT"
	EnvDatabasePath   = "CPPHUB_DATABASE_PATH"
)

// parseEnv overlays Config with values from the environment. Unset or empty
// variables leave the current value untouched; an unparseable timeout is
// ignored rather than fatal.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
