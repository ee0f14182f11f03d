package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "mockapi-secret", c.SecretKey)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, 6, c.PerPage)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", ":9090", "-k", "key", "-s", "s3cr3t", "-t", "5", "-p", "3", "-l", "debug"},
			expected: &Config{ListenAddr: ":9090", APIKey: "key", SecretKey: "s3cr3t", TokenTTL: 5 * time.Minute, PerPage: 3, LogLevel: "debug"}},
		{name: "bad ttl", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "mock.json")
	b, err := json.Marshal(map[string]any{
		"listen_addr":       "127.0.0.1:7000",
		"api_key":           "json-key",
		"token_ttl_minutes": 10,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"mockapi", "-c", path, "-a", ":7001"}
	cfg := LoadConfig()

	assert.Equal(t, ":7001", cfg.ListenAddr)
	assert.Equal(t, "json-key", cfg.APIKey)
	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 6, cfg.PerPage)

	os.Args = []string{"mockapi", "-config", filepath.Join(t.TempDir(), "missing.json")}
	require.Panics(t, func() { LoadConfig() })
}
