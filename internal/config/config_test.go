package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "PORT", "APP_ENV",
		"SESSION_SECRET", "SESSION_TTL", "MAX_SESSIONS", "PLAN_RATE_PER_MINUTE", "LOG_LEVEL",
		"TRUST_PROXY",
	} {
		t.Setenv(key, "")
	}

	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("OPENAI_API_KEY", "   ")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, 6, cfg.PlanRatePerMinute)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Len(t, cfg.SessionSecret, 64, "a random secret is generated outside production")
	assert.False(t, cfg.TrustProxy)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("MAX_SESSIONS", "50")
	t.Setenv("PLAN_RATE_PER_MINUTE", "bogus")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "http://localhost:11434/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 50, cfg.MaxSessions)
	assert.Equal(t, 6, cfg.PlanRatePerMinute)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.TrustProxy)
}

func TestLoadConfigSetsLogLevelFirst(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	// even a failed load leaves the logger configured for the fatal line
	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLoadConfigProductionNeedsSessionSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_ENV", "production")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}
