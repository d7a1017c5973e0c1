package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	// Upstream settings
	BaseURL   string `json:"base_url"`
	UserAgent string `json:"user_agent"`

	// Article count bounds
	DefaultCount int `json:"default_count"`
	MaxCount     int `json:"max_count"`

	// Network settings
	RequestTimeout int `json:"request_timeout_seconds"`

	// HTTP API settings
	Host string `json:"host"`
	Port string `json:"port"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		BaseURL:        getEnvOrDefault("GEEKNEWS_BASE_URL", "https://news.hada.io"),
		UserAgent:      getEnvOrDefault("USER_AGENT", "Mozilla/5.0 (compatible; geeknews-server/1.0)"),
		DefaultCount:   getEnvOrDefaultInt("DEFAULT_ARTICLE_COUNT", 20),
		MaxCount:       getEnvOrDefaultInt("MAX_ARTICLE_COUNT", 100),
		RequestTimeout: getEnvOrDefaultInt("REQUEST_TIMEOUT_SECONDS", 10),
		Host:           getEnvOrDefault("HOST", "0.0.0.0"),
		Port:           getEnvOrDefault("PORT", "8080"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "warning"),
	}

	return config, config.validate()
}

// validate checks that the configuration values are usable
func (c *Config) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return &ConfigError{Field: "GEEKNEWS_BASE_URL", Message: fmt.Sprintf("must be an absolute URL, got %q", c.BaseURL)}
	}
	if c.MaxCount < 1 {
		return &ConfigError{Field: "MAX_ARTICLE_COUNT", Message: "must be a positive integer"}
	}
	if c.DefaultCount < 1 || c.DefaultCount > c.MaxCount {
		return &ConfigError{Field: "DEFAULT_ARTICLE_COUNT", Message: fmt.Sprintf("must be between 1 and %d", c.MaxCount)}
	}
	if c.RequestTimeout < 1 {
		return &ConfigError{Field: "REQUEST_TIMEOUT_SECONDS", Message: "must be a positive integer"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
