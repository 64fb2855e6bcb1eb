package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:          "5000",
		MediaDir:      "media",
		MediaMaxBytes: 25 * 1024 * 1024,
		Env:           "development",
		DBPassword:    "password",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing media dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.MediaDir = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive media limit", func(t *testing.T) {
		cfg := validConfig()
		cfg.MediaMaxBytes = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production with strong password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.DBPassword = "4-very-long-and-random-secret"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
