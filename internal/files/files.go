// Package files resolves the Markdown files an invocation operates on:
// explicit paths, directories walked recursively, glob patterns from
// the command line, and doublestar discovery patterns from config.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// isMarkdown returns true if the file extension is .md or .markdown.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// MatchesAny returns true if path matches any of the given glob
// patterns. Invalid patterns are skipped.
func MatchesAny(patterns []string, path string) bool {
	cleanPath := filepath.Clean(path)
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// Resolve takes positional arguments and returns deduplicated, sorted
// Markdown file paths. It supports individual files, directories
// (recursive *.md and *.markdown), and glob patterns. Returns an error
// for nonexistent paths that are not glob patterns.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			out = append(out, clean)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			if err := walkDir(arg, add); err != nil {
				return nil, err
			}
		case err == nil:
			// Explicitly named files are accepted regardless of
			// extension.
			add(arg)
		case hasGlobChars(arg):
			if err := expandGlob(arg, add); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("no such file: %s", arg)
		}
	}

	sort.Strings(out)
	return out, nil
}

func walkDir(dir string, add func(string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isMarkdown(path) {
			add(path)
		}
		return nil
	})
}

// expandGlob walks from the pattern's static prefix and adds Markdown
// files matching the compiled pattern.
func expandGlob(pattern string, add func(string)) error {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	base := staticPrefix(pattern)
	if base == "" {
		base = "."
	}

	return filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if g.Match(path) || g.Match(filepath.ToSlash(path)) {
			if isMarkdown(path) {
				add(path)
			}
		}
		return nil
	})
}

// staticPrefix returns the directory portion of pattern before the
// first glob meta-character.
func staticPrefix(pattern string) string {
	i := strings.IndexAny(pattern, "*?[")
	if i < 0 {
		return filepath.Dir(pattern)
	}
	slash := strings.LastIndex(pattern[:i], "/")
	if slash < 0 {
		return ""
	}
	return pattern[:slash]
}
