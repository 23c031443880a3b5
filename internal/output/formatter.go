package output

import (
	"io"

	"github.com/DanielOaks/readmark/internal/analyze"
)

// Formatter defines the interface for outputting findings.
type Formatter interface {
	Format(w io.Writer, findings []analyze.Finding) error
}
