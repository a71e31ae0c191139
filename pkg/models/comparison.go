package models

// Comparison is the classified outcome for one relative path
type Comparison struct {
	Path      string
	LeftHash  string
	RightHash string
	State     State
}

// LeftExists reports whether the left tree has the file
func (c Comparison) LeftExists() bool {
	return c.LeftHash != Missing
}

// RightExists reports whether the right tree has the file
func (c Comparison) RightExists() bool {
	return c.RightHash != Missing
}
