package output

import (
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// TextRenderer prints a human-readable listing followed by summary counts
type TextRenderer struct{}

// Render implements Renderer
func (r *TextRenderer) Render(w io.Writer, filter models.State, report *models.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Left : %s\n", report.LeftRoot)
	ew.printf("Right: %s\n", report.RightRoot)
	ew.printf("\n")

	for _, c := range report.Filter(filter) {
		ew.printf("%s : %s\n", c.Path, c.State.DisplayName())
		ew.printf("\tleft  : %-40s\n", c.LeftHash)
		ew.printf("\tright : %-40s\n", c.RightHash)
		ew.printf("\n")
	}

	s := report.Summary()
	ew.printf("\n")
	ew.printf("%5d files in the left directory\n", s.LeftFiles)
	ew.printf("%5d files in the right directory\n", s.RightFiles)
	ew.printf("%5d equal files\n", s.Equal)
	ew.printf("%5d hash mismatches\n", s.HashMismatch)
	ew.printf("%5d files at the left with the right counterpart missing\n", s.RightMissing)
	ew.printf("%5d files at the right with the left counterpart missing\n", s.LeftMissing)
	ew.printf("%5d files total\n", s.Total)

	return ew.err
}

// Name returns the format name
func (r *TextRenderer) Name() string {
	return string(models.FormatText)
}
