// Package syllable estimates syllable counts with a vowel-group
// heuristic: each maximal run of vowels contributes one syllable, a
// silent trailing "e" is discounted, and every word counts at least one.
// The estimate is wrong for plenty of English words, but it is stable,
// fast, and close enough for the syllable-based readability formulas.
package syllable

import (
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`\w+`)

const vowels = "aeiouy"

// Count estimates the syllable count of a single word. Words with no
// vowels still count one syllable.
func Count(word string) int {
	w := strings.ToLower(word)
	n := 0
	prevVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			n++
		}
		prevVowel = isVowel
	}
	if n > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

// CountText sums Count over every word of text.
func CountText(text string) int {
	total := 0
	for _, w := range wordRE.FindAllString(text, -1) {
		total += Count(w)
	}
	return total
}

// Polysyllables returns the number of words in text with three or more
// syllables.
func Polysyllables(text string) int {
	n := 0
	for _, w := range wordRE.FindAllString(text, -1) {
		if Count(w) >= 3 {
			n++
		}
	}
	return n
}
