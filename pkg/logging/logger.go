// Package logging provides the structured run log. Nothing is logged unless
// a log file is configured.
package logging

import (
	"context"
	"fmt"
	"strings"
)

// Level represents log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger defines the interface for logging
type Logger interface {
	// Debug logs a debug message
	Debug(ctx context.Context, msg string, fields Fields)

	// Info logs an info message
	Info(ctx context.Context, msg string, fields Fields)

	// Warn logs a warning message
	Warn(ctx context.Context, msg string, fields Fields)

	// Error logs an error message
	Error(ctx context.Context, msg string, err error, fields Fields)

	// WithFields returns a logger with additional fields
	WithFields(fields Fields) Logger

	// Close flushes and closes the logger
	Close() error
}

// Config selects where and how a run is logged
type Config struct {
	// File is the log file path; empty disables logging
	File   string
	Format string
	Level  string
}

const (
	defaultMaxSize    = 10 * 1024 * 1024
	defaultMaxBackups = 5
)

// New returns a FileLogger for cfg, or a NullLogger when no file is set
func New(cfg Config) (Logger, error) {
	if cfg.File == "" {
		return NewNullLogger(), nil
	}

	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return NewFileLogger(FileLoggerConfig{
		Path:       cfg.File,
		Format:     format,
		Level:      ParseLevel(cfg.Level),
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
	})
}

// ParseFormat parses a log format name; empty means text
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format: %s (use: text, json)", s)
	}
}

// NullLogger drops every entry
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (*NullLogger) Debug(context.Context, string, Fields)        {}
func (*NullLogger) Info(context.Context, string, Fields)         {}
func (*NullLogger) Warn(context.Context, string, Fields)         {}
func (*NullLogger) Error(context.Context, string, error, Fields) {}
func (l *NullLogger) WithFields(Fields) Logger                   { return l }
func (*NullLogger) Close() error                                 { return nil }
