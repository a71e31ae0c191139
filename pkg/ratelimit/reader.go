package ratelimit

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

// minBurst keeps reads smooth for very low limits
const minBurst = 64 * 1024

// Limiter controls the rate of data transfer across multiple readers.
// A single Limiter is safe for concurrent use by both tree scans.
type Limiter struct {
	bucketSize int
	limiter    *rate.Limiter
}

// NewLimiter creates a new rate limiter with the specified bytes per second limit.
// It returns nil (no limiting) for non-positive values.
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}

	// Bucket size is 1 second worth of data or 64KB minimum
	bucketSize := minBurst
	if bytesPerSecond > int64(bucketSize) {
		bucketSize = int(bytesPerSecond)
	}

	return &Limiter{
		bucketSize: bucketSize,
		limiter:    rate.NewLimiter(rate.Limit(bytesPerSecond), bucketSize),
	}
}

// Reader wraps an io.Reader with bandwidth limiting
type Reader struct {
	reader  io.Reader
	limiter *Limiter
	ctx     context.Context
}

// NewReader wraps an io.Reader with rate limiting
func NewReader(ctx context.Context, reader io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return reader
	}
	return &Reader{
		reader:  reader,
		limiter: limiter,
		ctx:     ctx,
	}
}

// Read implements io.Reader. It reserves tokens for the requested size
// before reading and blocks until they are available or the context ends.
func (r *Reader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	toRead := len(p)
	if toRead > r.limiter.bucketSize {
		toRead = r.limiter.bucketSize
	}
	if toRead == 0 {
		return r.reader.Read(p)
	}

	if err := r.limiter.limiter.WaitN(r.ctx, toRead); err != nil {
		if ctxErr := r.ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		// WaitN fails early when the wait would outlast the deadline
		if _, ok := r.ctx.Deadline(); ok {
			return 0, context.DeadlineExceeded
		}
		return 0, err
	}

	return r.reader.Read(p[:toRead])
}

// ParseBandwidth parses a bandwidth limit such as "512K", "10M" or "1G"
// (binary multiples, optional trailing "B" or "/s"). Empty means unlimited.
func ParseBandwidth(s string) (int64, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	if value == "" || value == "0" {
		return 0, nil
	}

	value = strings.TrimSuffix(value, "/S")
	value = strings.TrimSuffix(value, "B")
	if value == "" {
		return 0, fmt.Errorf("invalid bandwidth %q", s)
	}

	multiplier := int64(1)
	switch value[len(value)-1] {
	case 'K':
		multiplier = 1024
	case 'M':
		multiplier = 1024 * 1024
	case 'G':
		multiplier = 1024 * 1024 * 1024
	}
	if multiplier > 1 {
		value = value[:len(value)-1]
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("invalid bandwidth %q", s)
	}

	limit := n * float64(multiplier)
	if limit >= math.MaxInt64 {
		return 0, fmt.Errorf("bandwidth %q is too large", s)
	}
	return int64(limit), nil
}
