package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("TMDB_API_KEY", "key")
	t.Setenv("QUOTE_SECRET", "secret")
	t.Setenv("QUOTE_TTL", "5m")
	t.Setenv("DB_HOST", "")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://broker/")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "key", cfg.TMDBAPIKey)
	assert.Equal(t, 5*time.Minute, cfg.QuoteTTL)
	assert.Equal(t, 12*time.Second, cfg.TMDBTimeout)
	assert.False(t, cfg.DB.Enabled)
	assert.Equal(t, "amqp://broker/", cfg.AMQPURL)
}

func TestLoadDBConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "cinema")
	t.Setenv("DB_PORT", "")

	db := LoadDBConfig()
	assert.True(t, db.Enabled)
	assert.Equal(t, "3306", db.Port)
	assert.Equal(t, "cinema", db.Name)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "off")
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "90s")

	assert.False(t, envBool("X_BOOL", true))
	assert.True(t, envBool("X_MISSING", true))
	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.Equal(t, 90*time.Second, envDur("X_DUR", time.Second))
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, parseMethods(" get, head ,"))
}

func TestLoadRateLimitConfig_Normalizes(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestRedisOptions(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")

	opts := RedisOptions()
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.NotNil(t, opts.TLSConfig)
}

func TestLoadLayoutConfig(t *testing.T) {
	t.Setenv("LAYOUTS_FILE", "layouts.yaml")
	t.Setenv("DEFAULT_THEATER", "")
	t.Setenv("DB_HOST", "")

	lc := LoadLayoutConfig()
	assert.Equal(t, "layouts.yaml", lc.File)
	assert.Equal(t, "cinetech-hall-1", lc.DefaultTheater)
	assert.False(t, lc.DB.Enabled)
}
