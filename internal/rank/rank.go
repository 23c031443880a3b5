// Package rank finds the hardest sentences of a document and every span
// where they occur.
package rank

import (
	"sort"
	"strings"

	"github.com/DanielOaks/readmark/internal/textstat"
)

// Capacity is the default number of difficult sentences retained per
// document.
const Capacity = 3

// Span is a half-open character range in the scored text.
type Span struct {
	Offset int
	Length int
}

// Scored pairs a sentence with its difficulty score.
type Scored struct {
	Score    float64
	Sentence string
}

// Hardest scores each sentence of text and keeps the n most difficult,
// hardest first. The direction follows lowerIsEasier: when true, higher
// scores are harder. The retained set is re-sorted and truncated after
// every insertion, so exact score ties resolve by document order rather
// than by a global stable sort; callers must not rely on which of two
// tied sentences survives.
func Hardest(text string, score func(string) float64, lowerIsEasier bool, n int) []Scored {
	if n <= 0 {
		n = Capacity
	}
	var kept []Scored
	for sentence := range textstat.SentenceSeq(text) {
		kept = append(kept, Scored{Score: score(sentence), Sentence: sentence})
		sort.SliceStable(kept, func(i, j int) bool {
			if lowerIsEasier {
				return kept[i].Score > kept[j].Score
			}
			return kept[i].Score < kept[j].Score
		})
		if len(kept) > n {
			kept = kept[:n]
		}
	}
	return kept
}

// Spans returns a span for every literal occurrence of each retained
// sentence in text, sorted by offset ascending. A sentence repeated in
// the document is flagged at every occurrence, not just the one that
// was scored. Each occurrence is emitted once even when the retained
// set holds the same sentence text twice, but overlapping occurrences
// of distinct sentences are all kept.
func Spans(text string, hardest []Scored) []Span {
	var spans []Span
	scanned := make(map[string]struct{}, len(hardest))
	for _, s := range hardest {
		if _, done := scanned[s.Sentence]; done {
			continue
		}
		scanned[s.Sentence] = struct{}{}
		from := 0
		for {
			i := strings.Index(text[from:], s.Sentence)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, Span{Offset: start, Length: len(s.Sentence)})
			from = start + len(s.Sentence)
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Offset < spans[j].Offset })
	return spans
}
