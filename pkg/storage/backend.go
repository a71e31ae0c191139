package storage

import (
	"context"
	"io"
)

// FileInfo represents metadata about a regular file found during a walk
type FileInfo struct {
	RelativePath string
	Size         int64
}

// WalkFunc is called once per regular file. Returning an error stops the walk.
type WalkFunc func(info FileInfo) error

// Backend defines the read-only storage operations needed to scan a tree
type Backend interface {
	// Root returns the normalized absolute root path
	Root() string

	// Walk visits every regular file below the root, skipping entries
	// that cannot be accessed
	Walk(ctx context.Context, fn WalkFunc) error

	// Open opens a file for reading by its relative path
	Open(ctx context.Context, relativePath string) (io.ReadCloser, error)

	// Close releases any resources held by the backend
	Close() error
}
