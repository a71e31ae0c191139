package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/dirdiff/internal/platform"
)

var (
	// ErrRootNotFound is returned when a scan root does not exist
	ErrRootNotFound = errors.New("path does not exist")
	// ErrNotDirectory is returned when a scan root is not a directory
	ErrNotDirectory = errors.New("path is not a directory")
)

// Local is a filesystem-based storage backend
type Local struct {
	rootPath string
	// walkRoot is rootPath with symbolic links resolved
	walkRoot string
	// prefix is walkRoot without trailing separators
	prefix string
}

// NewLocal creates a new local filesystem backend
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := platform.AbsRoot(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, absPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absPath)
	}

	// WalkDir does not descend into a root that is itself a link
	walkRoot, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	return &Local{
		rootPath: absPath,
		walkRoot: walkRoot,
		prefix:   platform.TrimTrailingSeparator(walkRoot),
	}, nil
}

// Root returns the absolute root path as given, before link resolution
func (l *Local) Root() string {
	return l.rootPath
}

// RelativePath strips the resolved root from an absolute path below it. The result
// always starts with a separator.
func (l *Local) RelativePath(absPath string) string {
	return strings.TrimPrefix(absPath, l.prefix)
}

// Walk visits every regular file below the root.
// Directories, symbolic links and special files are not reported, and
// entries that cannot be read are skipped. Only an unreadable root or a
// cancelled context stops the walk.
func (l *Local) Walk(ctx context.Context, fn WalkFunc) error {
	err := filepath.WalkDir(l.walkRoot, func(p string, d fs.DirEntry, err error) error {
		// Check context cancellation
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if p == l.walkRoot {
				return err
			}
			// Inaccessible entry or vanished file
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		return fn(FileInfo{
			RelativePath: l.RelativePath(p),
			Size:         info.Size(),
		})
	})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("failed to walk %s: %w", l.rootPath, err)
	}

	return nil
}

// Open opens a file for reading
func (l *Local) Open(ctx context.Context, relativePath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(l.prefix + relativePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
