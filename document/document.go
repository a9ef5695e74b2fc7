// Package document loads a Markdown file, exposes the tables it
// contains, and writes edited table text back over the exact line
// range the table came from.
package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/tableparser"
)

// Document is an in-memory Markdown file. Line splits happen once on
// load; ReplaceRange keeps every line outside the replaced span
// byte-identical.
type Document struct {
	// Path is where Save writes. Empty for documents built from text.
	Path string

	lines []string
	// trailingNewline records whether the file ended with a line-feed,
	// so Save can preserve it.
	trailingNewline bool
	modified        bool
}

// Load reads a Markdown file from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := FromText(string(data))
	doc.Path = path
	return doc, nil
}

// FromText builds a Document from raw text, for tests and piped input.
func FromText(text string) *Document {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}
	return &Document{
		lines:           strings.Split(text, "\n"),
		trailingNewline: trailing,
	}
}

// Text returns the document's current content.
func (d *Document) Text() string {
	text := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		text += "\n"
	}
	return text
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Modified reports whether the document has unsaved replacements.
func (d *Document) Modified() bool {
	return d.modified
}

// Tables scans the current content for pipe-tables.
func (d *Document) Tables() []tableparser.Table {
	return tableparser.Scan(strings.Join(d.lines, "\n"))
}

// ReplaceRange splices text over the inclusive line range
// [startLine, endLine]. The replacement's line count may differ from
// the replaced span's; lines outside the span are untouched.
func (d *Document) ReplaceRange(startLine, endLine int, text string) error {
	if startLine < 0 || endLine >= len(d.lines) || startLine > endLine {
		return fmt.Errorf("invalid line range [%d, %d] for document with %d lines", startLine, endLine, len(d.lines))
	}

	replacement := strings.Split(text, "\n")
	updated := make([]string, 0, len(d.lines)-(endLine-startLine+1)+len(replacement))
	updated = append(updated, d.lines[:startLine]...)
	updated = append(updated, replacement...)
	updated = append(updated, d.lines[endLine+1:]...)
	d.lines = updated
	d.modified = true
	return nil
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	if d.Path == "" {
		return fmt.Errorf("document has no file path")
	}
	if err := os.WriteFile(d.Path, []byte(d.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	d.modified = false
	return nil
}
