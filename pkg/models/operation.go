package models

import (
	"fmt"
	"strings"
)

// Format selects how a report is rendered
type Format string

const (
	// FormatText renders a human-readable listing with summary counts
	FormatText Format = "Text"
	// FormatCSV renders one row per comparison
	FormatCSV Format = "Csv"
	// FormatJSON renders a single indented JSON object
	FormatJSON Format = "Json"
)

// ParseFormat converts a format name to a Format, ignoring case.
// "Default" is accepted as an alias of Text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "default":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &ValidationError{
			Field:   "format",
			Message: "unknown format \"" + name + "\" (valid: Text, Csv, Json)",
		}
	}
}

// MinBufferSize is the smallest read chunk a hasher accepts
const MinBufferSize = 4096

// CompareOptions holds the settings of one comparison run
type CompareOptions struct {
	LeftPath        string
	RightPath       string
	Filter          State
	Format          Format
	Algorithm       string
	ExcludePatterns []string
	BufferSize      int
	BandwidthLimit  int64 // bytes per second, 0 = unlimited
}

// Validate checks if the options are usable
func (o *CompareOptions) Validate() error {
	if o.LeftPath == "" {
		return &ValidationError{Field: "LeftPath", Message: "left path is required"}
	}
	if o.RightPath == "" {
		return &ValidationError{Field: "RightPath", Message: "right path is required"}
	}
	if o.Filter&^StateAll != 0 {
		return &ValidationError{Field: "Filter", Message: "filter contains unknown flags"}
	}
	if o.BufferSize < MinBufferSize {
		return &ValidationError{Field: "BufferSize", Message: fmt.Sprintf("buffer size must be at least %d bytes", MinBufferSize)}
	}
	if o.BandwidthLimit < 0 {
		return &ValidationError{Field: "BandwidthLimit", Message: "bandwidth limit cannot be negative"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
