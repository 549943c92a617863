package report

import (
	"encoding/json"
	"io"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string `json:"version"`
	View
}

// WriteJSON writes the resolution view as formatted JSON to the
// writer.
func WriteJSON(w io.Writer, v View) error {
	report := JSONReport{
		Version: "0.1.0",
		View:    v,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
