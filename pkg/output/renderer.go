// Package output renders comparison reports.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// Renderer writes a report in one output format.
// Renderers include only the comparisons selected by filter; summaries
// always cover the whole report.
type Renderer interface {
	// Render writes the report to w
	Render(w io.Writer, filter models.State, report *models.Report) error

	// Name returns the format name
	Name() string
}

// NewRenderer returns the renderer for a format
func NewRenderer(format models.Format) (Renderer, error) {
	switch format {
	case models.FormatText, "":
		return &TextRenderer{}, nil
	case models.FormatCSV:
		return &CSVRenderer{}, nil
	case models.FormatJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport renders the report into a file, replacing any previous content.
// The report is written next to path and renamed into place, so a failed
// render leaves the previous file untouched.
func WriteReport(path string, format models.Format, filter models.State, report *models.Report) error {
	renderer, err := NewRenderer(format)
	if err != nil {
		return err
	}
	return writeReportFile(path, renderer, filter, report)
}

func writeReportFile(path string, renderer Renderer, filter models.State, report *models.Report) (err error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = renderer.Render(file, filter, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err = file.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}

// errWriter remembers the first write error so a renderer can check once
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
