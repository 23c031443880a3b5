// Package mdtext extracts prose text from Markdown source.
package mdtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses source as Markdown using the default parser.
func Parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}

// Strip returns the prose text of source with Markdown syntax elided.
// Code blocks and raw HTML are dropped entirely; link labels, emphasis
// text, code spans and image alt text are kept.
//
// The result is a byte subsequence of source: kept text segments are
// emitted in source order, and block boundaries and line breaks re-emit
// a newline that exists in the source between the surrounding segments.
// seam.New depends on that property to align the result against the
// source.
func Strip(source []byte) string {
	doc := Parse(source)
	var b strings.Builder
	pendingBreak := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// A newline always separates two blocks in the source, so
			// re-emitting one here preserves the subsequence property.
			// The break is deferred until the next segment so nothing
			// trails the final block.
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && b.Len() > 0 {
				pendingBreak = true
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if t.Segment.Len() == 0 {
				return ast.WalkContinue, nil
			}
			if pendingBreak {
				b.WriteByte('\n')
				pendingBreak = false
			}
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				pendingBreak = true
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// StripFrontMatter removes YAML front matter delimited by "---\n" from
// the beginning of source. It returns the front matter block (including
// delimiters) and the remaining content. If no front matter is found,
// prefix is nil and content equals source.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}

// LineOfOffset converts a byte offset in source to a 1-based line
// number.
func LineOfOffset(source []byte, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}
	return line
}

// ColumnOfOffset converts a byte offset in source to a 1-based column
// within its line.
func ColumnOfOffset(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	col := 1
	for i := offset - 1; i >= 0 && source[i] != '\n'; i-- {
		col++
	}
	return col
}
