package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Storage
	Storage StorageConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// StorageConfig holds the data file settings.
type StorageConfig struct {
	// File is the path to the student data file.
	// The extension picks the format: .json (default) or .yaml/.yml.
	File string
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, console
}

// FromEnv builds configuration from environment variables. It does not
// validate: callers apply their overrides first and then call Validate.
func FromEnv() *Config {
	return &Config{
		App:           loadAppConfig(),
		Storage:       loadStorageConfig(),
		Observability: loadObservabilityConfig(),
	}
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", string(EnvDevelopment)))

	return AppConfig{
		Name:        getEnv("APP_NAME", "gradebook"),
		Environment: env,
		Debug:       getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		File: getEnv("GRADEBOOK_FILE", "students.json"),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Storage.File) == "" {
		errs = append(errs, "GRADEBOOK_FILE is required")
	}

	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch c.Observability.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, "LOG_FORMAT must be json or console")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// EffectiveLogLevel returns debug when APP_DEBUG is set, otherwise LOG_LEVEL.
func (c *Config) EffectiveLogLevel() string {
	if c.App.Debug {
		return "debug"
	}
	return c.Observability.LogLevel
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
