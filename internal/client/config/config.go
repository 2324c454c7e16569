package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerEndpointURL: base URL of the authentication backend.
//   - RequestTimeout: per-request timeout for remote calls.
//   - CachePath: path of the local SQLite cache database.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	CachePath         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:3333"
	c.RequestTimeout = 10 * time.Second
	c.CachePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
