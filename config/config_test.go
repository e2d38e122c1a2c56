package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("PRELUDE_API_KEY", "sk_test_123")
	t.Setenv("PRELUDE_BASE_URL", "https://api.example.com")
	t.Setenv("PRELUDE_TIMEOUT_S", "10")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.APIKey)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvRequiresAPIKey(t *testing.T) {
	// Setenv registers the restore; the key must be absent, not empty
	t.Setenv("PRELUDE_API_KEY", "placeholder")
	require.NoError(t, os.Unsetenv("PRELUDE_API_KEY"))

	_, err := FromEnv()
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default("sk_test_123")

	assert.Equal(t, "sk_test_123", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}
