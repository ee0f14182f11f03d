package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://reqres.in/api", c.APIBaseURL)
	assert.Empty(t, c.APIKey)
	assert.Equal(t, "userdesk.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvAPIKey, "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://reqres.in/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":  "http://from-json/api",
		"api_key":       "json-key",
		"database_path": "json.db",
	})
	t.Setenv(EnvAPIBase, "http://from-env/api")
	t.Setenv(EnvAPIKey, "env-key")
	os.Args = []string{"testbin", "-c", path, "-k", "flag-key"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-env/api", cfg.APIBaseURL)
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, "json.db", cfg.DatabasePath)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvAPIBase, "http://localhost:8080/api")
	t.Setenv(EnvAPIKey, "reqres-free-v1")

	cfg := &Config{APIBaseURL: "x", APIKey: "y"}
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "reqres-free-v1", cfg.APIKey)
}

func TestParseEnv_EmptyBaseKeepsValue(t *testing.T) {
	t.Setenv(EnvAPIBase, "")

	cfg := &Config{APIBaseURL: "https://reqres.in/api"}
	parseEnv(cfg)

	assert.Equal(t, "https://reqres.in/api", cfg.APIBaseURL)
}
