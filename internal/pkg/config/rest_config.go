package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Default values applied before reading the config file.
const (
	DefaultPort          = "8000"
	DefaultRateRequests  = 100
	DefaultRateWindowSec = 60
)

// RestConfig aggregates all settings required by the REST API binary.
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	CORS      CORSSettings      `mapstructure:"cors"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Redis     RedisSettings     `mapstructure:"redis"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
	Logger    LoggerSettings    `mapstructure:"logger"`
}

// Validate checks every settings group of the RestConfig
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.CORS.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST API configuration from the given YAML
// file, applies environment overrides and validates the result.
//
// Two plain environment variables are honored for deployment platforms that
// inject them directly: PORT and CORS_ORIGINS (comma separated list). All
// other settings can be overridden through COMMERCE_* variables, e.g.
// COMMERCE_DATABASE_DSN.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", DefaultPort)
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", DefaultRateRequests)
	v.SetDefault("rate_limit.window_seconds", DefaultRateWindowSec)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetEnvPrefix("COMMERCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORS.AllowOrigins = splitOrigins(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitOrigins parses a comma separated origin list, dropping empty entries.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
