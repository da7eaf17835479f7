package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all run configuration.
type Config struct {
	// Input configuration
	InputPath string
	Mode      string // "file" or "random"
	RandomLen int

	// Battery selection
	TestName string // empty means run the whole battery

	// Logging configuration
	LogLevel string

	// Metrics configuration
	MetricsEnabled bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		InputPath:      getEnvString("NIST_INPUT", ""),
		Mode:           getEnvString("NIST_MODE", "random"),
		RandomLen:      getEnvInt("NIST_RANDOM_LEN", 1000000),
		TestName:       getEnvString("NIST_TEST_NAME", ""),
		LogLevel:       getEnvString("LOG_LEVEL", "info"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validModes := map[string]bool{"file": true, "random": true}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid NIST_MODE: %s (must be file/random)", c.Mode)
	}

	if c.Mode == "file" && c.InputPath == "" {
		return fmt.Errorf("invalid NIST_INPUT: required when NIST_MODE=file")
	}

	if c.Mode == "random" && c.RandomLen <= 0 {
		return fmt.Errorf("invalid NIST_RANDOM_LEN: %d (must be > 0)", c.RandomLen)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug/info/warn/error)", c.LogLevel)
	}

	return nil
}

// getEnvString reads a string from environment variable or returns default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer from environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool reads a boolean from environment variable or returns default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
