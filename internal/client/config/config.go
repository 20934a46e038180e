package config

import "time"

// Config holds runtime settings for the CPP Hub CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend auth API (e.g. "http://localhost:3000/api").
//   - RequestTimeout: per-request timeout for backend calls.
//   - DatabasePath: path to the sqlite file holding local client state.
//
// Units: RequestTimeout is a time.Duration (e.g. 15*time.Second).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "cpphub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
