// Package config handles configuration for the mock API, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the mock API.
//
// Fields:
//   - ListenAddr: bind address of the HTTP listener.
//   - APIKey: when non-empty, required in the x-api-key header.
//   - SecretKey: HMAC secret for signing login tokens (HS256).
//   - TokenTTL: lifetime of issued tokens.
//   - PerPage: default page size of GET /api/users.
type Config struct {
	ListenAddr string
	APIKey     string
	SecretKey  string
	TokenTTL   time.Duration
	PerPage    int
	LogLevel   string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.APIKey = ""
	c.SecretKey = "mockapi-secret"
	c.TokenTTL = 60 * time.Minute
	c.PerPage = 6
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
