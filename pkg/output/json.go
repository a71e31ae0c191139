package output

import (
	"encoding/json"
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// JSONReportData is the document written by JSONRenderer
type JSONReportData struct {
	Left  string         `json:"Left"`
	Right string         `json:"Right"`
	Files []JSONFileData `json:"Files"`
}

// JSONFileData is one comparison in the JSON document
type JSONFileData struct {
	Path      string       `json:"Path"`
	LeftHash  string       `json:"LeftHash"`
	RightHash string       `json:"RightHash"`
	State     models.State `json:"State"`
}

// JSONRenderer prints the report as a single indented JSON object
type JSONRenderer struct{}

// Render implements Renderer
func (r *JSONRenderer) Render(w io.Writer, filter models.State, report *models.Report) error {
	selected := report.Filter(filter)
	data := JSONReportData{
		Left:  report.LeftRoot,
		Right: report.RightRoot,
		Files: make([]JSONFileData, 0, len(selected)),
	}

	for _, c := range selected {
		data.Files = append(data.Files, JSONFileData{
			Path:      c.Path,
			LeftHash:  c.LeftHash,
			RightHash: c.RightHash,
			State:     c.State,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// Name returns the format name
func (r *JSONRenderer) Name() string {
	return string(models.FormatJSON)
}
