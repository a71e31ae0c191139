// Package compare merges two scanned trees into an ordered list of
// per-path comparisons.
package compare

import (
	"github.com/google/btree"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// btreeDegree is the branching factor of the path index
const btreeDegree = 32

// entry is one path of the union with the digest seen on each side
type entry struct {
	path  string
	left  string
	right string
}

func lessEntry(a, b *entry) bool {
	// Go string comparison is byte-wise
	return a.path < b.path
}

// Classify returns the single state for a pair of digests, either of which
// may be models.Missing. Two missing digests yield StateNone.
func Classify(leftDigest, rightDigest string) models.State {
	leftMissing := leftDigest == models.Missing
	rightMissing := rightDigest == models.Missing

	switch {
	case leftMissing && rightMissing:
		return models.StateNone
	case leftMissing:
		return models.StateLeftMissing
	case rightMissing:
		return models.StateRightMissing
	case leftDigest == rightDigest:
		return models.StateEqual
	default:
		return models.StateHashMismatch
	}
}

// Compare returns one comparison per distinct relative path found in either
// set, sorted ascending by path. Both sets are only read.
func Compare(left, right *models.FileSet) []models.Comparison {
	union := btree.NewG(btreeDegree, lessEntry)

	if left != nil {
		for _, r := range left.Records {
			union.ReplaceOrInsert(&entry{path: r.RelativePath, left: r.Digest, right: models.Missing})
		}
	}

	if right != nil {
		for _, r := range right.Records {
			if e, ok := union.Get(&entry{path: r.RelativePath}); ok {
				e.right = r.Digest
				continue
			}
			union.ReplaceOrInsert(&entry{path: r.RelativePath, left: models.Missing, right: r.Digest})
		}
	}

	comparisons := make([]models.Comparison, 0, union.Len())
	union.Ascend(func(e *entry) bool {
		comparisons = append(comparisons, models.Comparison{
			Path:      e.path,
			LeftHash:  e.left,
			RightHash: e.right,
			State:     Classify(e.left, e.right),
		})
		return true
	})

	return comparisons
}
