package output

import (
	"encoding/json"
	"io"

	"github.com/DanielOaks/readmark/internal/analyze"
)

// JSONFormatter outputs findings as a JSON array.
type JSONFormatter struct{}

type jsonFinding struct {
	File     string  `json:"file"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
	Start    int     `json:"start"`
	Length   int     `json:"length"`
	Formula  string  `json:"formula"`
	Score    float64 `json:"score"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
}

// Format writes findings as a pretty-printed JSON array. An empty slice
// of findings produces [].
func (f *JSONFormatter) Format(w io.Writer, findings []analyze.Finding) error {
	items := make([]jsonFinding, 0, len(findings))
	for _, d := range findings {
		items = append(items, jsonFinding{
			File:     d.File,
			Line:     d.Line,
			Column:   d.Column,
			Start:    d.Start,
			Length:   d.Length,
			Formula:  d.Formula,
			Score:    d.Score,
			Severity: string(d.Severity),
			Message:  d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
