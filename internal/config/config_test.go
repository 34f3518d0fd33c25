package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "shopbot", cfg.DBName)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, ChatTransportSSE, cfg.ChatTransport)
		assert.False(t, cfg.SeedDevData)
		assert.Empty(t, cfg.NATSURL)
		assert.Empty(t, cfg.CatalogPath)
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("SEED_DEV_DATA", "true")
		t.Setenv("CHAT_TRANSPORT", "NATS")
		t.Setenv("NATS_URL", "nats://nats:4222")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "require", cfg.DBSSLMode)
		assert.True(t, cfg.SeedDevData)
		assert.Equal(t, ChatTransportNATS, cfg.ChatTransport)
		assert.Equal(t, "nats://nats:4222", cfg.NATSURL)
	})

	t.Run("API_KEY is required", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("unknown chat transport", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("CHAT_TRANSPORT", "carrier-pigeon")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CHAT_TRANSPORT")
	})

	t.Run("PORT parsing", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"float port", "8080.5", true},
			{"empty string", "", true},
			{"not a number", "eighty", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "shop",
		DBPassword: "p@ss",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "shopbot",
	}

	assert.Equal(t, "postgres://shop:p@ss@db:5433/shopbot?sslmode=disable", cfg.GetDBConnString())

	cfg.DBSSLMode = "verify-full"
	assert.Contains(t, cfg.GetDBConnString(), "sslmode=verify-full")
}

// clearEnvVars unsets every variable Load reads. t.Setenv restores them
// after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"SEED_DEV_DATA", "CATALOG_PATH", "CHAT_TRANSPORT", "NATS_URL",
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
