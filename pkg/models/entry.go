package models

// Missing is the digest recorded for a path that does not exist in a tree
const Missing = "MISSING"

// FileRecord is one regular file found by a scan
type FileRecord struct {
	// RelativePath is the path with the scanned root removed. It starts with
	// a path separator and is the join key across trees.
	RelativePath string

	// Digest is the uppercase hexadecimal content hash
	Digest string
}

// FileSet is the complete result of scanning one root.
// Records are in scan order, not sorted.
type FileSet struct {
	RootPath string
	Records  []FileRecord

	// Bytes is the total size of the hashed files as seen by the walk
	Bytes int64
}

// Len returns the number of records
func (fs *FileSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.Records)
}
