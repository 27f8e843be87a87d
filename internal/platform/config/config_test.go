package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT", "120-M")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("MAX_BATCH_SIZE", "100")
	t.Setenv("FIXTURE_PATH", "fixtures/cheque_amounts.csv")
	t.Setenv("POSTHOG_ENDPOINT", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 100, cfg.MaxBatchSize)
	assert.Equal(t, "fixtures/cheque_amounts.csv", cfg.FixturePath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cheque.example.com, https://admin.example.com")
	t.Setenv("MAX_BATCH_SIZE", "25")
	t.Setenv("FIXTURE_PATH", "golden.csv")
	t.Setenv("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://cheque.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 25, cfg.MaxBatchSize)
	assert.Equal(t, "golden.csv", cfg.FixturePath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non numeric port", key: "PORT", val: "http"},
		{name: "batch size too large", key: "MAX_BATCH_SIZE", val: "5000"},
		{name: "bad posthog endpoint", key: "POSTHOG_ENDPOINT", val: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "8080")
			t.Setenv("MAX_BATCH_SIZE", "100")
			t.Setenv("POSTHOG_ENDPOINT", "")
			t.Setenv(tt.key, tt.val)

			cfg, err := LoadConfig()

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b,,c "))
	assert.Nil(t, splitList(" , "))
}
