package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 8, cfg.Engine.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Engine.AdTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Engine.RecomputeInterval)
	assert.Equal(t, configs.EventSourceRedis, cfg.Engine.EventSource)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost", cfg.Psql.Addr.Hostname())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_SEED", "true")
	t.Setenv("REDIS_KEY_PREFIX", "adspend:")
	t.Setenv("ENGINE_CONCURRENCY", "32")
	t.Setenv("ENGINE_AD_TIMEOUT", "250ms")
	t.Setenv("ENGINE_RECOMPUTE_INTERVAL", "0s")
	t.Setenv("ENGINE_EVENT_SOURCE", "clickhouse")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Seed)
	assert.Equal(t, "adspend:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 32, cfg.Engine.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.AdTimeout)
	assert.Zero(t, cfg.Engine.RecomputeInterval)
	assert.Equal(t, configs.EventSourceClickHouse, cfg.Engine.EventSource)
}

func TestLoadRejectsInvalidEngine(t *testing.T) {
	cases := map[string][2]string{
		"zero concurrency": {"ENGINE_CONCURRENCY", "0"},
		"negative timeout": {"ENGINE_AD_TIMEOUT", "-1s"},
		"unknown source":   {"ENGINE_EVENT_SOURCE", "kafka"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
