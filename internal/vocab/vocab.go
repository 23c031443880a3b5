// Package vocab answers word familiarity against named vocabulary lists.
// The Dale-Chall and Spache formulas count a word as difficult when it is
// absent from their familiarity list. Lookups are case-sensitive and
// exact-match, so capitalized sentence starters can score as difficult;
// that matches how the published word lists are applied.
package vocab

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"os"
	"regexp"
	"strings"
)

//go:embed dale_chall.txt spache.txt
var builtinFS embed.FS

// Name identifies a vocabulary list.
type Name string

// Built-in vocabulary names.
const (
	DaleChall Name = "dale-chall"
	Spache    Name = "spache"
)

var wordRE = regexp.MustCompile(`\w+`)

// Lists holds loaded vocabularies keyed by name.
type Lists struct {
	words map[Name]map[string]struct{}
}

// Builtin returns Lists backed by the embedded word lists.
func Builtin() *Lists {
	l := &Lists{words: make(map[Name]map[string]struct{})}
	for name, file := range map[Name]string{
		DaleChall: "dale_chall.txt",
		Spache:    "spache.txt",
	} {
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			// Embedded files are part of the build; a missing one is a
			// packaging bug.
			panic(fmt.Sprintf("vocab: embedded list %s: %v", file, err))
		}
		l.words[name] = parseList(data)
	}
	return l
}

// LoadFile replaces the named vocabulary with words read from path, one
// word per line. Blank lines and lines starting with '#' are skipped.
func (l *Lists) LoadFile(name Name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading vocabulary %q: %w", name, err)
	}
	l.words[name] = parseList(data)
	return nil
}

// IsFamiliar reports whether word appears in the named vocabulary.
// An unknown vocabulary name treats every word as familiar, so the
// difficult-word count degrades to zero rather than erroring.
func (l *Lists) IsFamiliar(word string, name Name) bool {
	set, ok := l.words[name]
	if !ok {
		return true
	}
	_, ok = set[word]
	return ok
}

// DifficultWords counts the words of text absent from the named
// vocabulary.
func (l *Lists) DifficultWords(text string, name Name) int {
	if _, ok := l.words[name]; !ok {
		return 0
	}
	n := 0
	for _, w := range wordRE.FindAllString(text, -1) {
		if !l.IsFamiliar(w, name) {
			n++
		}
	}
	return n
}

func parseList(data []byte) map[string]struct{} {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
