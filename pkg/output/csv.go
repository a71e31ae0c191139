package output

import (
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// CSVRenderer prints one comma separated row per comparison.
// Fields are never quoted, so a path containing a comma yields extra columns.
type CSVRenderer struct{}

// Render implements Renderer
func (r *CSVRenderer) Render(w io.Writer, filter models.State, report *models.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Path,State,LeftHash,RightHash\n")
	for _, c := range report.Filter(filter) {
		ew.printf("%s,%s,%s,%s\n", c.Path, c.State, c.LeftHash, c.RightHash)
	}

	return ew.err
}

// Name returns the format name
func (r *CSVRenderer) Name() string {
	return string(models.FormatCSV)
}
