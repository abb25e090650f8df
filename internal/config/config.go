// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/randytsao24/citydistance/internal/pipeline"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "CITYDISTANCE"

// Config holds all application configuration.
type Config struct {
	Env           string
	LogLevel      string
	DirectoryFile string
	OutputFormat  string
	PipelineStyle string
	CacheTTL      time.Duration
}

// Load reads an optional .env file, then environment variables with
// sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_FILE", "")
	v.SetDefault("OUTPUT_FORMAT", string(pipeline.FormatText))
	v.SetDefault("PIPELINE_STYLE", string(pipeline.StyleComposed))
	v.SetDefault("CACHE_TTL_SECONDS", 300)

	return &Config{
		Env:           v.GetString("ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		DirectoryFile: v.GetString("DIRECTORY_FILE"),
		OutputFormat:  v.GetString("OUTPUT_FORMAT"),
		PipelineStyle: v.GetString("PIPELINE_STYLE"),
		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if _, err := pipeline.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := pipeline.ParseStyle(c.PipelineStyle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: cache TTL must be positive, got %s", ErrInvalidConfig, c.CacheTTL)
	}
	return nil
}

// ServiceOptions maps the config onto pipeline options
func (c *Config) ServiceOptions() (pipeline.Options, error) {
	format, err := pipeline.ParseFormat(c.OutputFormat)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	style, err := pipeline.ParseStyle(c.PipelineStyle)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return pipeline.Options{
		Style:    style,
		Format:   format,
		CacheTTL: c.CacheTTL,
	}, nil
}
