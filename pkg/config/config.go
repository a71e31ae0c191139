package config

import (
	"fmt"

	"github.com/sdejongh/dirdiff/pkg/hasher"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/ratelimit"
)

// Config represents the application configuration
type Config struct {
	Compare     CompareConfig     `yaml:"compare"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Exclude     []string          `yaml:"exclude"`
}

// CompareConfig holds comparison settings
type CompareConfig struct {
	Mode      ModeList `yaml:"mode"`      // state names, ORed together
	Format    string   `yaml:"format"`    // "Text", "Csv" or "Json"
	Algorithm string   `yaml:"algorithm"` // "sha256" or "blake3"
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	BufferSize     int    `yaml:"buffer_size"`
	BandwidthLimit string `yaml:"bandwidth_limit"` // e.g. "10M", empty = unlimited
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Progress bool   `yaml:"progress"` // Show a scan counter on stderr
	File     string `yaml:"file"`     // Write the report here instead of stdout
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	File   string `yaml:"file"`   // Log file path (empty = no logging)
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Mode:      ModeList{"Different"},
			Format:    string(models.FormatText),
			Algorithm: hasher.DefaultAlgorithm,
		},
		Performance: PerformanceConfig{
			BufferSize: hasher.DefaultBufferSize,
		},
		Output: OutputConfig{
			Progress: false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
		},
		Exclude: []string{},
	}
}

// Filter returns the ORed state mask of compare.mode
func (c *Config) Filter() (models.State, error) {
	return models.ParseStates(c.Compare.Mode)
}

// Bandwidth returns performance.bandwidth_limit in bytes per second
func (c *Config) Bandwidth() (int64, error) {
	return ratelimit.ParseBandwidth(c.Performance.BandwidthLimit)
}

// LoggerConfig returns the settings for logging.New
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		File:   c.Logging.File,
		Format: c.Logging.Format,
		Level:  c.Logging.Level,
	}
}

// Options builds the options of one comparison run between two roots
func (c *Config) Options(left, right string) (*models.CompareOptions, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees these parse
	filter, _ := c.Filter()
	format, _ := models.ParseFormat(c.Compare.Format)
	bandwidth, _ := c.Bandwidth()

	opts := &models.CompareOptions{
		LeftPath:        left,
		RightPath:       right,
		Filter:          filter,
		Format:          format,
		Algorithm:       c.Compare.Algorithm,
		ExcludePatterns: c.Exclude,
		BufferSize:      c.Performance.BufferSize,
		BandwidthLimit:  bandwidth,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Filter(); err != nil {
		return &models.ValidationError{Field: "compare.mode", Message: err.Error()}
	}

	if _, err := models.ParseFormat(c.Compare.Format); err != nil {
		return &models.ValidationError{
			Field:   "compare.format",
			Message: "must be 'Text', 'Csv' or 'Json'",
		}
	}

	if _, err := hasher.ParseAlgorithm(c.Compare.Algorithm); err != nil {
		return &models.ValidationError{
			Field:   "compare.algorithm",
			Message: "must be 'sha256' or 'blake3'",
		}
	}

	if c.Performance.BufferSize < models.MinBufferSize {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: fmt.Sprintf("must be at least %d bytes", models.MinBufferSize),
		}
	}

	if _, err := c.Bandwidth(); err != nil {
		return &models.ValidationError{
			Field:   "performance.bandwidth_limit",
			Message: err.Error(),
		}
	}

	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
