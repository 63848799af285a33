package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("TOKEN_RENEW_EARLY", "")
	t.Setenv("CREDENTIALS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	// trailing slash dropped so path joining stays predictable
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.RenewEarly)
	assert.NotEmpty(t, cfg.CredentialsFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("TOKEN_RENEW_EARLY", "30s")
	t.Setenv("CREDENTIALS_FILE", "/tmp/creds.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.RenewEarly)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsFile)
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("HTTP_TIMEOUT", "nonsense")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
