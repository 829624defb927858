package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CORSSettings controls which web origins may call the API from a browser.
// AllowCredentials stays disabled unless a deployment explicitly needs
// cookie-sharing across origins.
type CORSSettings struct {
	AllowOrigins     []string `mapstructure:"allow_origins" validate:"required,min=1,dive,required"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}

	return nil
}

// RedisSettings holds connection settings for the Redis instance backing the
// cart store, the catalog cache and the rate limiter.
type RedisSettings struct {
	Address  string `mapstructure:"address" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}

	return nil
}

// RateLimitSettings configures the per-IP fixed window limiter.
type RateLimitSettings struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests" validate:"min=1"`
	WindowSeconds int  `mapstructure:"window_seconds" validate:"min=1"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	if !s.Enabled {
		return nil
	}

	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	return nil
}
