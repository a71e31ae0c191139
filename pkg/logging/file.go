package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// fileSink is the open log file shared by a logger and every logger
// derived from it with WithFields
type fileSink struct {
	config      FileLoggerConfig
	mu          sync.Mutex
	file        *os.File
	currentSize int64
}

// FileLogger implements Logger with file output.
// It is safe for concurrent use, including loggers derived with WithFields.
type FileLogger struct {
	sink   *fileSink
	fields Fields
}

// NewFileLogger creates a new file logger
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open file in append mode
	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		sink: &fileSink{
			config:      config,
			file:        file,
			currentSize: info.Size(),
		},
	}, nil
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger writing to the same file with additional fields
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		sink:   l.sink,
		fields: mergeFields(l.fields, fields),
	}
}

// Close closes the log file. Derived loggers stop writing as well.
func (l *FileLogger) Close() error {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	s := l.sink
	if level < s.config.Level {
		return
	}

	all := mergeFields(l.fields, fields)

	var line []byte
	if s.config.Format == FormatJSON {
		var jsonErr error
		line, jsonErr = formatJSON(level, msg, err, all)
		if jsonErr != nil {
			return
		}
	} else {
		line = formatText(level, msg, err, all)
	}

	s.write(line)
}

func (s *fileSink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return
	}

	// Check rotation before writing
	if s.config.MaxSize > 0 && s.currentSize >= s.config.MaxSize {
		s.rotate()
		if s.file == nil {
			return
		}
	}

	n, _ := s.file.Write(line)
	s.currentSize += int64(n)
}

// rotate shifts path.N to path.N+1, moves the active file to path.1 and
// reopens an empty file. Caller holds mu.
func (s *fileSink) rotate() {
	s.file.Close()
	s.file = nil

	path := s.config.Path
	for i := s.config.MaxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", path, i), fmt.Sprintf("%s.%d", path, i+1))
	}
	os.Rename(path, path+".1")

	if s.config.MaxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", path, s.config.MaxBackups+1))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	s.file = file
	s.currentSize = 0
}

func mergeFields(base, extra Fields) Fields {
	merged := make(Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// formatJSON formats a log entry as one JSON line
func formatJSON(level Level, msg string, err error, fields Fields) ([]byte, error) {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = levelString(level)
	entry["message"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	data, jsonErr := json.Marshal(entry)
	if jsonErr != nil {
		return nil, jsonErr
	}
	return append(data, '\n'), nil
}

// formatText formats a log entry as "timestamp [LEVEL] message key=value..."
// with fields in key order
func formatText(level Level, msg string, err error, fields Fields) []byte {
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteString(" [")
	b.WriteString(levelString(level))
	b.WriteString("] ")
	b.WriteString(msg)

	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// levelString returns the string representation of a log level
func levelString(level Level) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string; unknown values mean info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// LevelString returns level as string (exported version)
func LevelString(level Level) string {
	return levelString(level)
}
