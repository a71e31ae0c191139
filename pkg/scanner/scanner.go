// Package scanner turns a directory tree into a set of content digests.
package scanner

import (
	"context"
	"errors"

	"github.com/sdejongh/dirdiff/pkg/hasher"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

// ProgressFunc is called after each file has been hashed
type ProgressFunc func(relativePath string)

// Scanner walks a backend and hashes every regular file it finds
type Scanner struct {
	backend  storage.Backend
	hasher   *hasher.Hasher
	exclude  *Matcher
	logger   logging.Logger
	progress ProgressFunc
}

// Option configures a Scanner
type Option func(*Scanner)

// WithExclude skips files matching any of the patterns
func WithExclude(patterns []string) Option {
	return func(s *Scanner) {
		s.exclude = NewMatcher(patterns)
	}
}

// WithLogger sets the logger used to report skipped files
func WithLogger(logger logging.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress registers a per-file callback
func WithProgress(fn ProgressFunc) Option {
	return func(s *Scanner) {
		s.progress = fn
	}
}

// New creates a scanner over backend using h for digests
func New(backend storage.Backend, h *hasher.Hasher, opts ...Option) *Scanner {
	s := &Scanner{
		backend: backend,
		hasher:  h,
		logger:  logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan hashes every reachable regular file below the root, one at a time in
// walk order. Files that cannot be opened or read are left out of the set.
// A cancelled context aborts the scan and no set is returned.
func (s *Scanner) Scan(ctx context.Context) (*models.FileSet, error) {
	set := &models.FileSet{RootPath: s.backend.Root()}

	err := s.backend.Walk(ctx, func(info storage.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.exclude.Match(info.RelativePath) {
			s.logger.Debug(ctx, "excluded file", logging.Fields{"path": info.RelativePath})
			return nil
		}

		digest, err := s.hasher.HashFile(ctx, s.backend, info.RelativePath)
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.logger.Debug(ctx, "skipped unreadable file", logging.Fields{
				"path":  info.RelativePath,
				"error": err.Error(),
			})
			return nil
		}

		set.Records = append(set.Records, models.FileRecord{
			RelativePath: info.RelativePath,
			Digest:       digest,
		})
		set.Bytes += info.Size

		if s.progress != nil {
			s.progress(info.RelativePath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "scan completed", logging.Fields{
		"root":  set.RootPath,
		"files": set.Len(),
		"bytes": set.Bytes,
	})

	return set, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
