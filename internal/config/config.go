package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// BaseURL is the remote API address. Read once at startup,
	// never mutated afterwards.
	BaseURL         string
	HTTPTimeout     time.Duration
	RenewEarly      time.Duration
	CredentialsFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:         strings.TrimRight(strings.TrimSpace(os.Getenv("API_BASE_URL")), "/"),
		HTTPTimeout:     getDuration("HTTP_TIMEOUT", 30*time.Second),
		RenewEarly:      getDuration("TOKEN_RENEW_EARLY", time.Minute),
		CredentialsFile: getEnv("CREDENTIALS_FILE", defaultCredentialsFile()),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	if c.RenewEarly <= 0 {
		return fmt.Errorf("TOKEN_RENEW_EARLY must be positive")
	}

	if strings.TrimSpace(c.CredentialsFile) == "" {
		return fmt.Errorf("CREDENTIALS_FILE cannot be empty")
	}

	return nil
}

func defaultCredentialsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".blogadmin-credentials.json"
	}

	return filepath.Join(dir, "blogadmin", "credentials.json")
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}
