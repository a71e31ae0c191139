package models

import (
	"time"
)

// Report represents the results of comparing two trees
type Report struct {
	// Run details
	ID        string
	LeftRoot  string
	RightRoot string

	// Timing
	StartTime time.Time
	Duration  time.Duration

	// Comparisons sorted ascending by path (byte-wise)
	Comparisons []Comparison
}

// Summary holds the totals of a report. It always covers the complete
// comparison list, regardless of any display filter.
type Summary struct {
	LeftFiles    int
	RightFiles   int
	Equal        int
	HashMismatch int
	RightMissing int
	LeftMissing  int
	Total        int
}

// Summary computes the totals of the report
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Comparisons)}
	for _, c := range r.Comparisons {
		if c.LeftExists() {
			s.LeftFiles++
		}
		if c.RightExists() {
			s.RightFiles++
		}
		switch c.State {
		case StateEqual:
			s.Equal++
		case StateHashMismatch:
			s.HashMismatch++
		case StateRightMissing:
			s.RightMissing++
		case StateLeftMissing:
			s.LeftMissing++
		}
	}
	return s
}

// Filter returns the comparisons selected by the mask, preserving order
func (r *Report) Filter(filter State) []Comparison {
	selected := make([]Comparison, 0, len(r.Comparisons))
	for _, c := range r.Comparisons {
		if c.State.Matches(filter) {
			selected = append(selected, c)
		}
	}
	return selected
}
