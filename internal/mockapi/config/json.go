package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// JsonConfig is the on-disk shape of Config. token_ttl_minutes is whole
// minutes, matching the -t flag.
type JsonConfig struct {
	ListenAddr      string `json:"listen_addr"`
	APIKey          string `json:"api_key"`
	SecretKey       string `json:"secret_key"`
	TokenTTLMinutes int    `json:"token_ttl_minutes"`
	PerPage         int    `json:"per_page"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays config with the file named by -c or -config. Zero
// values in the file are ignored. Panics on read or unmarshal errors.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.APIKey != "" {
		config.APIKey = c.APIKey
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTLMinutes > 0 {
		config.TokenTTL = time.Duration(c.TokenTTLMinutes) * time.Minute
	}
	if c.PerPage > 0 {
		config.PerPage = c.PerPage
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
