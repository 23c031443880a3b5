package files

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks baseDir and returns files matching any of the
// doublestar patterns from config (e.g. "docs/**/*.md"). Patterns are
// matched against paths relative to baseDir. Results are deduplicated
// and sorted. Invalid patterns are ignored.
func Discover(baseDir string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	if baseDir == "" {
		baseDir = "."
	}

	valid := patterns[:0:0]
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []string

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		for _, p := range valid {
			ok, merr := doublestar.Match(p, rel)
			if merr == nil && ok {
				if !seen[path] {
					seen[path] = true
					out = append(out, path)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}
