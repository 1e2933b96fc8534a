package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	v, err := LoadConfig()
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 10*time.Minute, cfg.SearchCacheTTL)
	assert.Equal(t, 15*time.Second, cfg.SearchTimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "@every 5m", cfg.CompletionCron)
	assert.Equal(t, "Valet", cfg.SendGridFromName)
	assert.False(t, cfg.StrictTransitions)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("SEARCH_TIMEOUT", "3s")
	t.Setenv("STRICT_TRANSITIONS", "true")
	t.Setenv("REDIS_DB", "2")

	v, err := LoadConfig()
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.SearchTimeout)
	assert.True(t, cfg.StrictTransitions)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestParseConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	v, err := LoadConfig()
	require.NoError(t, err)
	_, err = ParseConfig(v)
	assert.Error(t, err)
}
