package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fincalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "json"

[cache]
backend = "redis"
redis_addr = "cache:6379"
redis_db = 2
ttl = "30m"

[history]
backend = "memory"

[irr]
guess = 0.05
tolerance = 1e-8
max_iterations = 50

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, "memory", cfg.History.Backend)
	assert.Equal(t, 20, cfg.History.ListLimit)
	assert.Equal(t, 0.05, cfg.IRR.Guess)
	assert.Equal(t, 50, cfg.IRR.MaxIterations)
	assert.Equal(t, "json", cfg.Output.Format)

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_DefaultFileOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FINCALC_LOG_LEVEL", "error")
	t.Setenv("FINCALC_CACHE_BACKEND", "none")
	t.Setenv("FINCALC_HISTORY_BACKEND", "none")
	t.Setenv("FINCALC_OUTPUT_FORMAT", "json")
	t.Setenv("FINCALC_REDIS_DB", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "none", cfg.History.Backend)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FINCALC_REDIS_DB", "two")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis"; c.Cache.RedisAddr = "" }},
		{"badger without path", func(c *Config) { c.History.Path = "" }},
		{"ttl", func(c *Config) { c.Cache.TTL = "soon" }},
		{"irr tolerance", func(c *Config) { c.IRR.Tolerance = 0 }},
		{"output format", func(c *Config) { c.Output.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("kind", "loan").Msg("calculated")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"kind":"loan"`)
	assert.Contains(t, out, `"message":"calculated"`)
}
