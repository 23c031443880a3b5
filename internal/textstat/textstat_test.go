package textstat_test

import (
	"testing"

	"github.com/DanielOaks/readmark/internal/textstat"
)

// --- Words tests ---

func TestWords_Simple(t *testing.T) {
	if got := textstat.Words("hello world"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWords_Empty(t *testing.T) {
	if got := textstat.Words(""); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestWords_MultipleSpaces(t *testing.T) {
	if got := textstat.Words("  hello   world  "); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWords_Underscore(t *testing.T) {
	// Underscore is a word character, so snake_case is one word.
	if got := textstat.Words("snake_case here"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

// --- Characters tests ---

func TestCharacters_Empty(t *testing.T) {
	if got := textstat.Characters(""); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestCharacters_PunctuationCounted(t *testing.T) {
	// "Hi." has no whitespace; all three bytes count, period included.
	if got := textstat.Characters("Hi."); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestCharacters_WhitespaceRemoved(t *testing.T) {
	// "The cat." -> "Thecat." = 7
	if got := textstat.Characters("The cat."); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestCharacters_MixedWhitespace(t *testing.T) {
	if got := textstat.Characters("a\tb\nc d"); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

// --- Sentences tests ---

func TestSentences_TwoSentences(t *testing.T) {
	if got := textstat.Sentences("The cat sat. The dog ran."); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestSentences_QuestionAndExclamation(t *testing.T) {
	if got := textstat.Sentences("Really? Wow!"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestSentences_NoTerminatorFloorsToOne(t *testing.T) {
	if got := textstat.Sentences("no punctuation here"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestSentences_EmptyFloorsToOne(t *testing.T) {
	// The floor applies even to empty text so formula divisions stay
	// defined.
	if got := textstat.Sentences(""); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestSentences_ListLines(t *testing.T) {
	// Unpunctuated lines ending in a word character count as sentences.
	if got := textstat.Sentences("first item\nsecond item\n"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestSentences_ColonLine(t *testing.T) {
	if got := textstat.Sentences("Ingredients:\n"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestSentences_Abbreviation(t *testing.T) {
	// "e.g. " counts: the dot after 'g' is followed by a space. The
	// approximation is contractual.
	if got := textstat.Sentences("Use e.g. this one."); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

// --- SentenceSeq tests ---

func collect(text string) []string {
	var out []string
	for s := range textstat.SentenceSeq(text) {
		out = append(out, s)
	}
	return out
}

func TestSentenceSeq_Simple(t *testing.T) {
	got := collect("Hello world. How are you?")
	want := []string{"Hello world.", "How are you?"}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSentenceSeq_TrailingFragment(t *testing.T) {
	got := collect("Done. And then")
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(got), got)
	}
	if got[1] != "And then" {
		t.Errorf("got %q, want %q", got[1], "And then")
	}
}

func TestSentenceSeq_MultipleTerminators(t *testing.T) {
	got := collect("What?! No way.")
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(got), got)
	}
	if got[0] != "What?!" {
		t.Errorf("got %q, want %q", got[0], "What?!")
	}
}

func TestSentenceSeq_Empty(t *testing.T) {
	if got := collect(""); len(got) != 0 {
		t.Fatalf("got %d sentences, want 0: %v", len(got), got)
	}
}

func TestSentenceSeq_WhitespaceOnly(t *testing.T) {
	if got := collect("   \n "); len(got) != 0 {
		t.Fatalf("got %d sentences, want 0: %v", len(got), got)
	}
}

func TestSentenceSeq_Restartable(t *testing.T) {
	seq := textstat.SentenceSeq("One. Two. Three.")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("got %d then %d sentences, want 3 both times", first, second)
	}
}

func TestSentenceSeq_EarlyStop(t *testing.T) {
	count := 0
	for range textstat.SentenceSeq("One. Two. Three.") {
		count++
		break
	}
	if count != 1 {
		t.Errorf("got %d sentences before break, want 1", count)
	}
}
