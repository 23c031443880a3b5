package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielOaks/readmark/internal/files"
)

// makeTree creates a small docs tree and returns its root.
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	paths := []string{
		"README.md",
		"notes.txt",
		"docs/guide.md",
		"docs/deep/more.markdown",
	}
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("Text.\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestResolve_Directory(t *testing.T) {
	root := makeTree(t)
	got, err := files.Resolve([]string{root})
	if err != nil {
		t.Fatal(err)
	}
	// Only markdown files, recursively.
	if len(got) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(got), got)
	}
}

func TestResolve_ExplicitNonMarkdownKept(t *testing.T) {
	root := makeTree(t)
	path := filepath.Join(root, "notes.txt")
	got, err := files.Resolve([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %v, want the explicit file", got)
	}
}

func TestResolve_Missing(t *testing.T) {
	if _, err := files.Resolve([]string{"nope.md"}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestResolve_Deduplicates(t *testing.T) {
	root := makeTree(t)
	path := filepath.Join(root, "README.md")
	got, err := files.Resolve([]string{path, path})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d files, want 1", len(got))
	}
}

func TestMatchesAny(t *testing.T) {
	if !files.MatchesAny([]string{"CHANGELOG.md"}, "docs/CHANGELOG.md") {
		t.Error("expected basename match")
	}
	if files.MatchesAny([]string{"*.txt"}, "docs/guide.md") {
		t.Error("did not expect match")
	}
	// Invalid patterns are skipped, not fatal.
	if files.MatchesAny([]string{"["}, "docs/guide.md") {
		t.Error("invalid pattern must not match")
	}
}

func TestDiscover(t *testing.T) {
	root := makeTree(t)
	got, err := files.Discover(root, []string{"docs/**/*.md", "docs/**/*.markdown"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(got), got)
	}
}

func TestDiscover_NoPatterns(t *testing.T) {
	got, err := files.Discover(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
