package config

import "os"

const (
	EnvAPIBase = "USERDESK_API_BASE"
	EnvAPIKey  = "USERDESK_API_KEY"
)

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBase); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvAPIKey); ok {
		cfg.APIKey = v
	}
}
