package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("PIZZARIA_SET_KEY", "from_env")
	os.Unsetenv("PIZZARIA_MISSING_KEY")

	assert.Equal(t, "from_env", GetEnvWithDefault("PIZZARIA_SET_KEY", "default"))
	assert.Equal(t, "default", GetEnvWithDefault("PIZZARIA_MISSING_KEY", "default"))
	assert.Equal(t, "", GetEnvWithDefault("PIZZARIA_MISSING_KEY", ""))
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("PIZZARIA_INT", "42")
	t.Setenv("PIZZARIA_BOOL", "true")
	t.Setenv("PIZZARIA_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetEnvAsType("PIZZARIA_INT", 0))
	assert.Equal(t, true, GetEnvAsType("PIZZARIA_BOOL", false))

	// Unparseable and missing values fall back to the default.
	assert.Equal(t, 7, GetEnvAsType("PIZZARIA_BAD_INT", 7))
	assert.Equal(t, "fallback", GetEnvAsType("PIZZARIA_UNSET", "fallback"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "super_secret_jwt_key")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, config.Port)
	assert.Equal(t, "0.0.0.0", config.Host)
	assert.Equal(t, "postgres", config.DBDriver)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "super_secret_jwt_key", config.JWTSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, v := range []string{"APP_PORT", "APP_HOST", "DB_DRIVER", "SQLITE_PATH", "LOG_LEVEL", "JWT_SECRET"} {
		os.Unsetenv(v)
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "sqlite", config.DBDriver)
	assert.Equal(t, "pizzaria.sqlite", config.SQLitePath)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("APP_PORT", "not_a_number")

	config, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestConfigStringMasksSecrets(t *testing.T) {
	config := &Config{DBPassword: "hunter2", JWTSecret: "super_secret_jwt_key"}

	s := config.String()
	assert.NotContains(t, s, "hunter2")
	assert.NotContains(t, s, "super_secret_jwt_key")
	assert.Contains(t, s, "[REDACTED]")
}
