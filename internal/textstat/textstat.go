// Package textstat computes word, character and sentence statistics for
// prose fragments. The counters are regex approximations, not linguistic
// analysis; their quirks (punctuation counted as characters, abbreviations
// split into sentences) are part of the contract because every readability
// formula was calibrated against exactly these counts.
package textstat

import (
	"iter"
	"regexp"
	"strings"
)

var (
	wordRE       = regexp.MustCompile(`\w+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	// A sentence terminator is a word character followed by '.', '?' or
	// '!' and then whitespace or end of text.
	terminatorRE = regexp.MustCompile(`\w[.?!](\s|$)`)
	// List-style lines without terminal punctuation also count as
	// sentences: a word character, an optional colon, then a newline.
	listLineRE = regexp.MustCompile(`\w:?\n`)
	// A sentence fragment is a run of non-terminator characters followed
	// by one or more terminators, or a trailing unterminated run.
	fragmentRE = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)
)

// Words returns the number of maximal word-character runs in text.
func Words(text string) int {
	return len(wordRE.FindAllStringIndex(text, -1))
}

// Characters returns the length of text with all whitespace removed.
// Punctuation is counted.
func Characters(text string) int {
	return len(whitespaceRE.ReplaceAllString(text, ""))
}

// Sentences returns the number of sentence terminators in text, plus
// unpunctuated list-style lines, never less than 1. The floor keeps
// every formula's division by sentence count defined, including on
// texts with no terminal punctuation at all.
func Sentences(text string) int {
	n := len(terminatorRE.FindAllStringIndex(text, -1)) +
		len(listLineRE.FindAllStringIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// SentenceSeq returns a lazy sequence over the sentences of text, each
// trimmed of surrounding whitespace. Whitespace-only fragments are
// dropped. The sequence is finite and can be ranged over repeatedly.
//
// Splitting is approximate: abbreviations, decimals and quoted
// punctuation mis-segment, and that behavior is deliberate so that
// sentence-level scores line up with the document-level counters.
func SentenceSeq(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for len(rest) > 0 {
			loc := fragmentRE.FindStringIndex(rest)
			if loc == nil {
				return
			}
			s := strings.TrimSpace(rest[loc[0]:loc[1]])
			rest = rest[loc[1]:]
			if s == "" {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
