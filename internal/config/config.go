// Package config loads the compendium settings from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

// Config holds every setting. Command line flags override the environment.
type Config struct {
	// DBPath is the reference SQLite database.
	DBPath string `env:"COMPENDIUM_DB_PATH" envDefault:"pf2e_clean_data.sqlite"`
	// RedisAddr enables the item pool cache and campaigns. Empty disables both.
	RedisAddr string `env:"COMPENDIUM_REDIS_ADDR"`
	Language  string `env:"COMPENDIUM_LANGUAGE" envDefault:"en"`
	// PoolLimit caps the records loaded per loot category.
	PoolLimit int           `env:"COMPENDIUM_POOL_LIMIT" envDefault:"500"`
	CacheTTL  time.Duration `env:"COMPENDIUM_CACHE_TTL" envDefault:"24h"`
	LogLevel  string        `env:"COMPENDIUM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DBPath", c.DBPath, vb)
	if c.PoolLimit <= 0 {
		vb.Field("PoolLimit", "must be positive")
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "cannot be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	return vb.Build()
}

// Lang is the configured language. Anything not French is English.
func (c *Config) Lang() i18n.Language {
	return i18n.Parse(c.Language)
}

// SlogLevel is the configured log level, info when unparseable.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// CampaignsEnabled reports whether a Redis address is configured.
func (c *Config) CampaignsEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}
