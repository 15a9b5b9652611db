package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "pf2e_clean_data.sqlite", cfg.DBPath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 500, cfg.PoolLimit)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, i18n.English, cfg.Lang())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.False(t, cfg.CampaignsEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("COMPENDIUM_DB_PATH", "/data/pf2e.sqlite")
	t.Setenv("COMPENDIUM_REDIS_ADDR", "localhost:6379")
	t.Setenv("COMPENDIUM_LANGUAGE", "fr-CA")
	t.Setenv("COMPENDIUM_POOL_LIMIT", "120")
	t.Setenv("COMPENDIUM_CACHE_TTL", "90m")
	t.Setenv("COMPENDIUM_LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/pf2e.sqlite", cfg.DBPath)
	assert.True(t, cfg.CampaignsEnabled())
	assert.Equal(t, i18n.French, cfg.Lang())
	assert.Equal(t, 120, cfg.PoolLimit)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("COMPENDIUM_POOL_LIMIT", "lots")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"empty db path", func(c *config.Config) { c.DBPath = " " }, "DBPath"},
		{"zero pool limit", func(c *config.Config) { c.PoolLimit = 0 }, "PoolLimit"},
		{"negative ttl", func(c *config.Config) { c.CacheTTL = -time.Second }, "CacheTTL"},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				DBPath:    "db.sqlite",
				PoolLimit: 10,
				LogLevel:  "info",
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
