package output

import (
	"fmt"
	"io"

	"github.com/DanielOaks/readmark/internal/analyze"
)

// TextFormatter outputs findings in human-readable text format. When
// Color is true, the file location is printed in cyan and the formula
// name in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each finding as a single line in the pattern:
// file:line:col formula message
func (f *TextFormatter) Format(w io.Writer, findings []analyze.Finding) error {
	for _, d := range findings {
		var err error
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%s:%d:%d\033[0m \033[33m%s\033[0m %s\n",
				d.File, d.Line, d.Column, d.Formula, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d:%d %s %s\n",
				d.File, d.Line, d.Column, d.Formula, d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
