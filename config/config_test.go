package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_DEBUG", "GRADEBOOK_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "students.json", cfg.Storage.File)
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())
	assert.Equal(t, "console", cfg.Observability.LogFormat)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
}

func TestFromEnv_Values(t *testing.T) {
	t.Setenv("GRADEBOOK_FILE", "/data/grades.yaml")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("APP_DEBUG", "true")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/data/grades.yaml", cfg.Storage.File)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
	assert.Equal(t, "debug", cfg.EffectiveLogLevel())
}

func TestValidate_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")

	err := FromEnv().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestFromEnv_DoesNotValidate(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")

	cfg := FromEnv()
	assert.Equal(t, "loud", cfg.Observability.LogLevel)
	require.Error(t, cfg.Validate())

	cfg.Observability.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}
