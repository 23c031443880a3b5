// Package formula implements the seven readability formulas. Each
// formula scores whole documents and single sentences; the sentence
// variant runs the same body with a sentence count of one, except SMOG,
// which needs a 30-sentence baseline to stay numerically meaningful.
//
// Formula selection is a closed enum with exhaustive switches, so an
// unknown formula is a parse error at the configuration boundary rather
// than a runtime dispatch failure.
package formula

import (
	"fmt"
	"math"
	"sort"

	"github.com/DanielOaks/readmark/internal/syllable"
	"github.com/DanielOaks/readmark/internal/textstat"
	"github.com/DanielOaks/readmark/internal/vocab"
)

// Formula identifies one readability formula.
type Formula int

// The supported formulas.
const (
	AutomatedReadability Formula = iota
	Flesch
	FleschKincaid
	ColemanLiau
	DaleChall
	SMOG
	Spache
)

// Env supplies the text services the formulas depend on. The zero value
// is not usable; construct with DefaultEnv and override fields in tests.
type Env struct {
	// Syllables returns the total syllable count of a text fragment.
	Syllables func(text string) int
	// Polysyllables returns the number of words with three or more
	// syllables.
	Polysyllables func(text string) int
	// Difficult returns the number of words absent from the named
	// vocabulary.
	Difficult func(text string, name vocab.Name) int
}

// DefaultEnv returns an Env backed by the heuristic syllable counter
// and the built-in vocabulary lists.
func DefaultEnv() Env {
	lists := vocab.Builtin()
	return Env{
		Syllables:     syllable.CountText,
		Polysyllables: syllable.Polysyllables,
		Difficult:     lists.DifficultWords,
	}
}

var names = map[Formula]string{
	AutomatedReadability: "automated-readability",
	Flesch:               "flesch",
	FleschKincaid:        "flesch-kincaid",
	ColemanLiau:          "coleman-liau",
	DaleChall:            "dale-chall",
	SMOG:                 "smog",
	Spache:               "spache",
}

var descriptions = map[Formula]string{
	AutomatedReadability: "Automated Readability Index (grade level from characters per word).",
	Flesch:               "Flesch Reading Ease (0-100 scale, higher is easier).",
	FleschKincaid:        "Flesch-Kincaid Grade Level (grade level from syllables per word).",
	ColemanLiau:          "Coleman-Liau Index (grade level from characters, no syllables).",
	DaleChall:            "Dale-Chall Readability (grade score from familiar-word list).",
	SMOG:                 "SMOG (grade level from polysyllabic word count).",
	Spache:               "Spache Readability (grade level for primary-age texts).",
}

// All returns the formulas in a stable order.
func All() []Formula {
	fs := make([]Formula, 0, len(names))
	for f := range names {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}

// Parse resolves a configuration name to a Formula.
func Parse(name string) (Formula, error) {
	for f, n := range names {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown formula %q (available: %s)", name, nameList())
}

func nameList() string {
	out := ""
	for i, f := range All() {
		if i > 0 {
			out += ", "
		}
		out += names[f]
	}
	return out
}

// String returns the formula's configuration name.
func (f Formula) String() string { return names[f] }

// Description returns a one-line description for listings.
func (f Formula) Description() string { return descriptions[f] }

// LowerIsEasier reports the score direction: true means a lower score
// reads easier. Only Flesch Reading Ease runs the other way.
func (f Formula) LowerIsEasier() bool { return f != Flesch }

// DefaultThreshold is the difficulty threshold used when the config does
// not override it. Scores crossing the threshold in the formula's
// difficult direction flag the document.
func (f Formula) DefaultThreshold() float64 {
	switch f {
	case AutomatedReadability, FleschKincaid, ColemanLiau, SMOG:
		return 14
	case Flesch:
		return 50
	case DaleChall:
		return 9
	case Spache:
		return 6
	}
	return 0
}

// Exceeds reports whether score crosses threshold in the formula's
// difficult direction.
func (f Formula) Exceeds(score, threshold float64) bool {
	if f.LowerIsEasier() {
		return score > threshold
	}
	return score < threshold
}

// ScoreDocument computes the document-level score of text, rounded the
// way the formula's published form rounds: ceiling for the Automated
// Readability Index, one decimal place for Dale-Chall, nearest integer
// for the rest. Zero-word text divides by zero and the resulting
// NaN/Inf propagates to the caller unchanged.
func (f Formula) ScoreDocument(text string, env Env) float64 {
	raw := f.score(text, float64(textstat.Sentences(text)), env)
	switch f {
	case AutomatedReadability:
		return math.Ceil(raw)
	case DaleChall:
		return math.Round(raw*10) / 10
	default:
		return math.Round(raw)
	}
}

// ScoreSentence computes the unrounded score of a single sentence by
// running the formula with a sentence count of one. SMOG instead scales
// its polysyllable count by 30 against a fixed 30-sentence baseline,
// since one sentence is far below the sample size the formula assumes.
func (f Formula) ScoreSentence(text string, env Env) float64 {
	if f == SMOG {
		// poly*30 against 30 sentences: the 30/sentences factor cancels.
		poly := float64(env.Polysyllables(text)) * 30
		return 3.1291 + 1.0430*math.Sqrt(poly)
	}
	return f.score(text, 1, env)
}

func (f Formula) score(text string, sentences float64, env Env) float64 {
	words := float64(textstat.Words(text))
	switch f {
	case AutomatedReadability:
		chars := float64(textstat.Characters(text))
		return 4.71*(chars/words) + 0.5*(words/sentences) - 21.43
	case Flesch:
		syllables := float64(env.Syllables(text))
		return 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
	case FleschKincaid:
		syllables := float64(env.Syllables(text))
		return 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
	case ColemanLiau:
		chars := float64(textstat.Characters(text))
		return 0.0588*(chars/words*100) - 0.296*(sentences/words*100) - 15.8
	case DaleChall:
		pct := float64(env.Difficult(text, vocab.DaleChall)) / words * 100
		raw := 0.1579*pct + 0.0496*(words/sentences)
		if pct > 5 {
			raw += 3.6365
		}
		return raw
	case SMOG:
		poly := float64(env.Polysyllables(text))
		return 3.1291 + 1.0430*math.Sqrt(poly*(30/sentences))
	case Spache:
		difficult := float64(env.Difficult(text, vocab.Spache))
		return 0.659 + 0.121*(words/sentences) + 0.082*(difficult/words*100)
	}
	return math.NaN()
}
