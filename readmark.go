// Package readmark scores the readability of Markdown prose and
// locates the hardest sentences in the original source text.
package readmark

import (
	"github.com/DanielOaks/readmark/internal/analyze"
	"github.com/DanielOaks/readmark/internal/formula"
	"github.com/DanielOaks/readmark/internal/mdtext"
)

// Span is a half-open byte range in the original source.
type Span struct {
	Start  int
	Length int
}

// FormulaInfo describes one available readability formula.
type FormulaInfo struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	DefaultThreshold float64 `json:"defaultThreshold"`
	LowerIsEasier    bool    `json:"lowerIsEasier"`
}

// Formulas lists the available formulas in a stable order.
func Formulas() []FormulaInfo {
	all := formula.All()
	out := make([]FormulaInfo, 0, len(all))
	for _, f := range all {
		out = append(out, FormulaInfo{
			Name:             f.String(),
			Description:      f.Description(),
			DefaultThreshold: f.DefaultThreshold(),
			LowerIsEasier:    f.LowerIsEasier(),
		})
	}
	return out
}

// Score strips Markdown markup and front matter from source and returns
// its document-level readability score under the named formula.
func Score(formulaName string, source []byte) (float64, error) {
	f, err := formula.Parse(formulaName)
	if err != nil {
		return 0, err
	}
	a := analyze.New(f)
	return a.ScoreSource(source).Score, nil
}

// DifficultSpans strips source, ranks its hardest sentences under the
// named formula, and returns every occurrence translated back into
// source coordinates. Spans are returned regardless of any difficulty
// threshold; callers gate on Score.
func DifficultSpans(formulaName string, source []byte) ([]Span, error) {
	f, err := formula.Parse(formulaName)
	if err != nil {
		return nil, err
	}
	a := analyze.New(f)

	prefix, content := mdtext.StripFrontMatter(source)
	stripped := mdtext.Strip(content)

	spans := a.FindDifficultSpans(string(content), stripped)
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		out = append(out, Span{Start: sp.Start + len(prefix), Length: sp.Length})
	}
	return out, nil
}
