package vocab_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielOaks/readmark/internal/vocab"
)

func TestIsFamiliar_Builtin(t *testing.T) {
	l := vocab.Builtin()
	if !l.IsFamiliar("cat", vocab.DaleChall) {
		t.Error("expected cat to be familiar in dale-chall")
	}
	if l.IsFamiliar("linearizability", vocab.DaleChall) {
		t.Error("expected linearizability to be unfamiliar in dale-chall")
	}
}

func TestIsFamiliar_CaseSensitive(t *testing.T) {
	l := vocab.Builtin()
	// Lookups are exact-match: "The" is not on the list, "the" is.
	if l.IsFamiliar("The", vocab.DaleChall) {
		t.Error("expected capitalized The to be unfamiliar")
	}
	if !l.IsFamiliar("the", vocab.DaleChall) {
		t.Error("expected the to be familiar")
	}
}

func TestIsFamiliar_UnknownVocabulary(t *testing.T) {
	l := vocab.Builtin()
	// Unknown list names treat every word as familiar.
	if !l.IsFamiliar("xylophone", vocab.Name("nope")) {
		t.Error("expected unknown vocabulary to report familiar")
	}
}

func TestDifficultWords(t *testing.T) {
	l := vocab.Builtin()
	// "the cat sat" are all familiar; "ululated" is not.
	got := l.DifficultWords("the cat ululated", vocab.DaleChall)
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestDifficultWords_UnknownVocabulary(t *testing.T) {
	l := vocab.Builtin()
	got := l.DifficultWords("anything at all", vocab.Name("nope"))
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# comment\nfoo\nbar\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := vocab.Builtin()
	if err := l.LoadFile(vocab.Spache, path); err != nil {
		t.Fatal(err)
	}
	if !l.IsFamiliar("foo", vocab.Spache) {
		t.Error("expected foo to be familiar after load")
	}
	if l.IsFamiliar("cat", vocab.Spache) {
		t.Error("expected cat to be unfamiliar after replacement load")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	l := vocab.Builtin()
	if err := l.LoadFile(vocab.Spache, "does/not/exist.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
