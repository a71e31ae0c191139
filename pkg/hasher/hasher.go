package hasher

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"

	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

const (
	// DefaultBufferSize is the chunk size used for streaming reads
	DefaultBufferSize = 64 * 1024
)

// Algorithm describes a content digest
type Algorithm struct {
	Name    string
	Size    int
	NewFunc func() hash.Hash
}

var algorithms = map[string]*Algorithm{
	"sha256": {
		Name:    "sha256",
		Size:    sha256.Size,
		NewFunc: func() hash.Hash { return sha256.New() },
	},
	"blake3": {
		Name:    "blake3",
		Size:    32,
		NewFunc: func() hash.Hash { return blake3.New() },
	},
}

// DefaultAlgorithm is used when no algorithm is configured
const DefaultAlgorithm = "sha256"

// ParseAlgorithm returns the algorithm for the given name
func ParseAlgorithm(name string) (*Algorithm, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	alg, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %s (use: %s)", name, strings.Join(Names(), ", "))
	}
	return alg, nil
}

// Names returns the supported algorithm names in sorted order
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReaderWrapper wraps a reader before it is hashed (e.g., for rate limiting)
type ReaderWrapper func(ctx context.Context, r io.Reader) io.Reader

// Hasher computes content digests by streaming files in fixed-size chunks.
// It is safe for concurrent use.
type Hasher struct {
	algorithm     *Algorithm
	bufferPool    *sync.Pool
	readerWrapper ReaderWrapper
}

// New creates a hasher for the algorithm using chunks of bufferSize bytes
func New(algorithm *Algorithm, bufferSize int) *Hasher {
	if algorithm == nil {
		algorithm = algorithms[DefaultAlgorithm]
	}
	if bufferSize < models.MinBufferSize {
		bufferSize = models.MinBufferSize
	}
	return &Hasher{
		algorithm: algorithm,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// SetReaderWrapper sets a function to wrap readers (e.g., for rate limiting)
func (h *Hasher) SetReaderWrapper(wrapper ReaderWrapper) {
	h.readerWrapper = wrapper
}

// Algorithm returns the digest algorithm in use
func (h *Hasher) Algorithm() *Algorithm {
	return h.algorithm
}

// HashReader consumes the reader and returns its digest as uppercase
// hexadecimal. Cancellation is checked before every chunk; a cancelled
// context yields the context error and no digest.
func (h *Hasher) HashReader(ctx context.Context, r io.Reader) (string, error) {
	if h.readerWrapper != nil {
		r = h.readerWrapper(ctx, r)
	}

	digest := h.algorithm.NewFunc()

	// Get buffer from pool
	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	for {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := r.Read(buffer)
		if n > 0 {
			digest.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", err
			}
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(digest.Sum(nil))), nil
}

// HashFile opens a file through the backend and returns its digest
func (h *Hasher) HashFile(ctx context.Context, backend storage.Backend, relativePath string) (string, error) {
	reader, err := backend.Open(ctx, relativePath)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	return h.HashReader(ctx, reader)
}
