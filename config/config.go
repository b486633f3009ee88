package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "fincalc.toml"

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Cache   CacheConfig   `toml:"cache"`
	History HistoryConfig `toml:"history"`
	IRR     IRRConfig     `toml:"irr"`
	Output  OutputConfig  `toml:"output"`
}

type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `toml:"format" validate:"oneof=console json"` // console writes human-readable lines to stderr
}

type CacheConfig struct {
	Backend       string `toml:"backend" validate:"oneof=none memory redis"`
	RedisAddr     string `toml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db" validate:"gte=0"`
	TTL           string `toml:"ttl"` // e.g. "24h"; empty keeps entries until evicted
}

type HistoryConfig struct {
	Backend   string `toml:"backend" validate:"oneof=none memory badger"`
	Path      string `toml:"path" validate:"required_if=Backend badger"`
	ListLimit int    `toml:"list_limit" validate:"gte=0"`
}

// IRRConfig tunes the Newton-Raphson solver.
type IRRConfig struct {
	Guess         float64 `toml:"guess" validate:"gt=-1"`
	Tolerance     float64 `toml:"tolerance" validate:"gt=0"`
	MaxIterations int     `toml:"max_iterations" validate:"gt=0"`
}

type OutputConfig struct {
	Format string `toml:"format" validate:"oneof=text json yaml"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			TTL:       "24h",
		},
		History: HistoryConfig{
			Backend:   "badger",
			Path:      "./data/history",
			ListLimit: 20,
		},
		IRR: IRRConfig{
			Guess:         0.10,
			Tolerance:     1e-6,
			MaxIterations: 1000,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load builds the configuration: defaults, then the TOML file, then
// FINCALC_* environment overrides. An explicit path must exist; the default
// file is optional.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file, defaults apply
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if level := os.Getenv("FINCALC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("FINCALC_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if backend := os.Getenv("FINCALC_CACHE_BACKEND"); backend != "" {
		cfg.Cache.Backend = backend
	}
	if addr := os.Getenv("FINCALC_REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if password := os.Getenv("FINCALC_REDIS_PASSWORD"); password != "" {
		cfg.Cache.RedisPassword = password
	}
	if db := os.Getenv("FINCALC_REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("FINCALC_REDIS_DB: %w", err)
		}
		cfg.Cache.RedisDB = n
	}
	if ttl := os.Getenv("FINCALC_CACHE_TTL"); ttl != "" {
		cfg.Cache.TTL = ttl
	}
	if backend := os.Getenv("FINCALC_HISTORY_BACKEND"); backend != "" {
		cfg.History.Backend = backend
	}
	if path := os.Getenv("FINCALC_HISTORY_PATH"); path != "" {
		cfg.History.Path = path
	}
	if format := os.Getenv("FINCALC_OUTPUT_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	return nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.CacheTTL(); err != nil {
		return fmt.Errorf("invalid configuration: cache.ttl: %w", err)
	}
	return nil
}

// CacheTTL parses Cache.TTL; empty means no expiry.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Cache.TTL)
}
