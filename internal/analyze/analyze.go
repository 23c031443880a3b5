// Package analyze composes the scoring, ranking and seam subsystems
// into the document-level operations the CLI exposes: score a document,
// and locate its most difficult sentences in original-source
// coordinates.
package analyze

import (
	"fmt"
	"strconv"

	"github.com/DanielOaks/readmark/internal/formula"
	"github.com/DanielOaks/readmark/internal/mdtext"
	"github.com/DanielOaks/readmark/internal/rank"
	"github.com/DanielOaks/readmark/internal/seam"
	"github.com/DanielOaks/readmark/internal/textstat"
)

// Severity indicates the severity level of a finding.
type Severity string

// Severity levels.
const (
	Warning Severity = "warning"
)

// Span is a half-open byte range in original-text coordinates.
type Span struct {
	Start  int
	Length int
}

// Finding is one readability report for a checked file.
type Finding struct {
	File     string
	Line     int
	Column   int
	Start    int
	Length   int
	Formula  string
	Score    float64
	Severity Severity
	Message  string
}

// Result holds the document-level statistics of one scored source.
type Result struct {
	Score     float64
	Words     int
	Sentences int
}

// Analyzer scores documents with a fixed formula and environment.
// The zero value is not usable; construct with New.
type Analyzer struct {
	Formula   formula.Formula
	Env       formula.Env
	Threshold float64
	// Highlight enables per-sentence findings. When false, a document
	// over the threshold produces a single document-level finding.
	Highlight bool
	// MinWords skips documents shorter than this many words.
	MinWords int
	// Top is how many difficult sentences are retained; zero means
	// rank.Capacity.
	Top int
}

// New returns an Analyzer for f with the default environment, the
// formula's default threshold, and highlighting enabled.
func New(f formula.Formula) *Analyzer {
	return &Analyzer{
		Formula:   f,
		Env:       formula.DefaultEnv(),
		Threshold: f.DefaultThreshold(),
		Highlight: true,
	}
}

// ScoreDocument returns the document-level score of already-stripped
// text.
func (a *Analyzer) ScoreDocument(text string) float64 {
	return a.Formula.ScoreDocument(text, a.Env)
}

// ScoreSource strips front matter and Markdown from source and scores
// the remaining prose.
func (a *Analyzer) ScoreSource(source []byte) Result {
	_, content := mdtext.StripFrontMatter(source)
	stripped := mdtext.Strip(content)
	return Result{
		Score:     a.ScoreDocument(stripped),
		Words:     textstat.Words(stripped),
		Sentences: textstat.Sentences(stripped),
	}
}

// FindDifficultSpans ranks the hardest sentences of stripped and
// translates every occurrence into original-text coordinates.
func (a *Analyzer) FindDifficultSpans(original, stripped string) []Span {
	hardest := rank.Hardest(stripped, func(s string) float64 {
		return a.Formula.ScoreSentence(s, a.Env)
	}, a.Formula.LowerIsEasier(), a.Top)

	spans := rank.Spans(stripped, hardest)
	finder := seam.New(original, stripped)

	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		start, length := finder.Lookup(sp.Offset, sp.Length)
		out = append(out, Span{Start: start, Length: length})
	}
	return out
}

// CheckSource scores source and, when the document crosses the
// difficulty threshold, reports findings: one per difficult-sentence
// occurrence when highlighting is on, otherwise a single document-level
// finding. Offsets, lines and columns are in full-source coordinates,
// front matter included.
func (a *Analyzer) CheckSource(path string, source []byte) []Finding {
	prefix, content := mdtext.StripFrontMatter(source)
	stripped := mdtext.Strip(content)

	if a.MinWords > 0 && textstat.Words(stripped) < a.MinWords {
		return nil
	}

	score := a.ScoreDocument(stripped)
	if !a.Formula.Exceeds(score, a.Threshold) {
		return nil
	}

	if !a.Highlight {
		return []Finding{{
			File:     path,
			Line:     1,
			Column:   1,
			Formula:  a.Formula.String(),
			Score:    score,
			Severity: Warning,
			Message:  fmt.Sprintf("document is difficult to read (%s)", a.comparison(score)),
		}}
	}

	spans := a.FindDifficultSpans(string(content), stripped)
	findings := make([]Finding, 0, len(spans))
	for _, sp := range spans {
		start := sp.Start + len(prefix)
		findings = append(findings, Finding{
			File:     path,
			Line:     mdtext.LineOfOffset(source, start),
			Column:   mdtext.ColumnOfOffset(source, start),
			Start:    start,
			Length:   sp.Length,
			Formula:  a.Formula.String(),
			Score:    score,
			Severity: Warning,
			Message:  fmt.Sprintf("difficult sentence (%s)", a.comparison(score)),
		})
	}
	return findings
}

// comparison renders "formula score > threshold" with the sign matching
// the formula's difficult direction.
func (a *Analyzer) comparison(score float64) string {
	sign := ">"
	if !a.Formula.LowerIsEasier() {
		sign = "<"
	}
	return fmt.Sprintf("%s %s %s %s",
		a.Formula, formatScore(score), sign, formatScore(a.Threshold))
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
