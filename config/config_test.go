package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Present but unparsable values fall back to defaults.
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("CORS_ORIGINS", " , ")
	t.Setenv("REVALIDATE_ON_RESTORE", "maybe")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.RevalidateOnRestore)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.example.com/api/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")
	t.Setenv("REVALIDATE_ON_RESTORE", "true")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "http://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, "cache:6380", cfg.RedisFullAddr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 100, cfg.LogMaxSize)
	assert.True(t, cfg.RevalidateOnRestore)
}
