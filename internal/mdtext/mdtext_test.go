package mdtext_test

import (
	"testing"

	"github.com/DanielOaks/readmark/internal/mdtext"
)

// assertSubsequence fails unless sub is a byte subsequence of full.
func assertSubsequence(t *testing.T, full, sub string) {
	t.Helper()
	fi := 0
	for si := 0; si < len(sub); si++ {
		for fi < len(full) && full[fi] != sub[si] {
			fi++
		}
		if fi == len(full) {
			t.Fatalf("%q is not a subsequence of %q (stuck at byte %d)", sub, full, si)
		}
		fi++
	}
}

func TestStrip_PlainParagraph(t *testing.T) {
	got := mdtext.Strip([]byte("Hello world.\n"))
	if got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestStrip_Link(t *testing.T) {
	src := "Click [here](https://example.com) now.\n"
	got := mdtext.Strip([]byte(src))
	if got != "Click here now." {
		t.Errorf("got %q, want %q", got, "Click here now.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_Emphasis(t *testing.T) {
	src := "This is *important* text.\n"
	got := mdtext.Strip([]byte(src))
	if got != "This is important text." {
		t.Errorf("got %q, want %q", got, "This is important text.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_Strong(t *testing.T) {
	src := "This is **bold** text.\n"
	got := mdtext.Strip([]byte(src))
	if got != "This is bold text." {
		t.Errorf("got %q, want %q", got, "This is bold text.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_CodeSpan(t *testing.T) {
	src := "Use `fmt.Println` to print.\n"
	got := mdtext.Strip([]byte(src))
	if got != "Use fmt.Println to print." {
		t.Errorf("got %q, want %q", got, "Use fmt.Println to print.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_Image(t *testing.T) {
	src := "See ![alt text](image.png) here.\n"
	got := mdtext.Strip([]byte(src))
	if got != "See alt text here." {
		t.Errorf("got %q, want %q", got, "See alt text here.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_SoftLineBreakKeepsNewline(t *testing.T) {
	// The newline between the two lines exists in the source, so it is
	// what separates them in the stripped text.
	src := "Hello\nworld.\n"
	got := mdtext.Strip([]byte(src))
	if got != "Hello\nworld." {
		t.Errorf("got %q, want %q", got, "Hello\nworld.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_HeadingAndParagraph(t *testing.T) {
	src := "# Title\n\nBody text here.\n"
	got := mdtext.Strip([]byte(src))
	if got != "Title\nBody text here." {
		t.Errorf("got %q, want %q", got, "Title\nBody text here.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_FencedCodeDropped(t *testing.T) {
	src := "Before.\n\n```go\nfmt.Println(1)\n```\n\nAfter.\n"
	got := mdtext.Strip([]byte(src))
	if got != "Before.\nAfter." {
		t.Errorf("got %q, want %q", got, "Before.\nAfter.")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_List(t *testing.T) {
	src := "- first item\n- second item\n"
	got := mdtext.Strip([]byte(src))
	if got != "first item\nsecond item" {
		t.Errorf("got %q, want %q", got, "first item\nsecond item")
	}
	assertSubsequence(t, src, got)
}

func TestStrip_SubsequenceOfMixedDocument(t *testing.T) {
	src := "# Guide\n\nRead [the docs](https://docs.example.com) " +
		"*carefully* before you `run` anything.\n\n" +
		"> Quoted advice here.\n\n- one\n- two\n"
	got := mdtext.Strip([]byte(src))
	assertSubsequence(t, src, got)
}

// --- StripFrontMatter tests ---

func TestStripFrontMatter_Present(t *testing.T) {
	src := []byte("---\ntitle: x\n---\nBody.\n")
	prefix, content := mdtext.StripFrontMatter(src)
	if string(prefix) != "---\ntitle: x\n---\n" {
		t.Errorf("prefix = %q", prefix)
	}
	if string(content) != "Body.\n" {
		t.Errorf("content = %q", content)
	}
}

func TestStripFrontMatter_Absent(t *testing.T) {
	src := []byte("Body only.\n")
	prefix, content := mdtext.StripFrontMatter(src)
	if prefix != nil {
		t.Errorf("prefix = %q, want nil", prefix)
	}
	if string(content) != "Body only.\n" {
		t.Errorf("content = %q", content)
	}
}

func TestStripFrontMatter_Unterminated(t *testing.T) {
	src := []byte("---\ntitle: x\nno close\n")
	prefix, content := mdtext.StripFrontMatter(src)
	if prefix != nil || string(content) != string(src) {
		t.Errorf("unterminated front matter should be left alone")
	}
}

// --- offset helpers ---

func TestLineOfOffset(t *testing.T) {
	src := []byte("one\ntwo\nthree\n")
	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{3, 1},
		{4, 2},
		{8, 3},
	}
	for _, tt := range tests {
		if got := mdtext.LineOfOffset(src, tt.offset); got != tt.want {
			t.Errorf("LineOfOffset(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestColumnOfOffset(t *testing.T) {
	src := []byte("one\ntwo\n")
	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{2, 3},
		{4, 1},
		{6, 3},
	}
	for _, tt := range tests {
		if got := mdtext.ColumnOfOffset(src, tt.offset); got != tt.want {
			t.Errorf("ColumnOfOffset(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}
