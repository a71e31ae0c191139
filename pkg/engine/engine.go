// Package engine runs a complete comparison: both trees are scanned
// concurrently, then merged and classified once both scans succeeded.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/dirdiff/pkg/compare"
	"github.com/sdejongh/dirdiff/pkg/hasher"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/ratelimit"
	"github.com/sdejongh/dirdiff/pkg/scanner"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

// Side identifies one of the two compared trees
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ProgressFunc is called after each hashed file. It may be called from
// both scans at once.
type ProgressFunc func(side Side, relativePath string)

// Config holds the collaborators of an Engine
type Config struct {
	Hasher          *hasher.Hasher
	Logger          logging.Logger
	ExcludePatterns []string
	Progress        ProgressFunc
}

// Engine compares two storage backends
type Engine struct {
	left     storage.Backend
	right    storage.Backend
	hasher   *hasher.Hasher
	logger   logging.Logger
	exclude  []string
	progress ProgressFunc
}

// New creates an engine over two backends
func New(left, right storage.Backend, cfg Config) *Engine {
	e := &Engine{
		left:     left,
		right:    right,
		hasher:   cfg.Hasher,
		logger:   cfg.Logger,
		exclude:  cfg.ExcludePatterns,
		progress: cfg.Progress,
	}
	if e.hasher == nil {
		e.hasher = hasher.New(nil, hasher.DefaultBufferSize)
	}
	if e.logger == nil {
		e.logger = logging.NewNullLogger()
	}
	return e
}

// NewFromOptions opens both roots and builds the hasher described by opts.
// A missing root or a root that is not a directory fails here, before any
// file is read.
func NewFromOptions(opts *models.CompareOptions, logger logging.Logger, progress ProgressFunc) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	algorithm, err := hasher.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	left, err := storage.NewLocal(opts.LeftPath)
	if err != nil {
		return nil, fmt.Errorf("left directory: %w", err)
	}
	right, err := storage.NewLocal(opts.RightPath)
	if err != nil {
		left.Close()
		return nil, fmt.Errorf("right directory: %w", err)
	}

	h := hasher.New(algorithm, opts.BufferSize)

	// One limiter shared by both scans caps the combined read rate
	if limiter := ratelimit.NewLimiter(opts.BandwidthLimit); limiter != nil {
		h.SetReaderWrapper(func(ctx context.Context, r io.Reader) io.Reader {
			return ratelimit.NewReader(ctx, r, limiter)
		})
	}

	return New(left, right, Config{
		Hasher:          h,
		Logger:          logger,
		ExcludePatterns: opts.ExcludePatterns,
		Progress:        progress,
	}), nil
}

// Run scans both trees concurrently and returns the sorted comparisons.
// The first scan failure cancels the other scan; on any error no report
// is returned.
func (e *Engine) Run(ctx context.Context) (*models.Report, error) {
	report := &models.Report{
		ID:        uuid.New().String(),
		LeftRoot:  e.left.Root(),
		RightRoot: e.right.Root(),
		StartTime: time.Now(),
	}

	logger := e.logger.WithFields(logging.Fields{"run_id": report.ID})
	logger.Info(ctx, "Starting comparison", logging.Fields{
		"left":      report.LeftRoot,
		"right":     report.RightRoot,
		"algorithm": e.hasher.Algorithm().Name,
	})

	var leftSet, rightSet *models.FileSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := e.scan(gctx, SideLeft, e.left, logger)
		leftSet = set
		return err
	})
	g.Go(func() error {
		set, err := e.scan(gctx, SideRight, e.right, logger)
		rightSet = set
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Comparison aborted", err, nil)
		return nil, err
	}

	report.Comparisons = compare.Compare(leftSet, rightSet)
	report.Duration = time.Since(report.StartTime)

	summary := report.Summary()
	logger.Info(ctx, "Comparison completed", logging.Fields{
		"duration":      report.Duration.String(),
		"total":         summary.Total,
		"equal":         summary.Equal,
		"hash_mismatch": summary.HashMismatch,
		"left_missing":  summary.LeftMissing,
		"right_missing": summary.RightMissing,
	})

	return report, nil
}

func (e *Engine) scan(ctx context.Context, side Side, backend storage.Backend, logger logging.Logger) (*models.FileSet, error) {
	opts := []scanner.Option{
		scanner.WithExclude(e.exclude),
		scanner.WithLogger(logger.WithFields(logging.Fields{"side": string(side)})),
	}
	if e.progress != nil {
		opts = append(opts, scanner.WithProgress(func(relativePath string) {
			e.progress(side, relativePath)
		}))
	}

	set, err := scanner.New(backend, e.hasher, opts...).Scan(ctx)
	if err != nil {
		if IsCancelled(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan %s directory: %w", side, err)
	}
	return set, nil
}

// Close releases both backends
func (e *Engine) Close() error {
	errLeft := e.left.Close()
	errRight := e.right.Close()
	if errLeft != nil {
		return errLeft
	}
	return errRight
}

// IsCancelled reports whether err was caused by a cancelled or expired context
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
