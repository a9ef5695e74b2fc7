// Package tableparser locates Markdown pipe-tables in a document and
// converts them to and from a grid of cell strings.
package tableparser

import (
	"regexp"
	"strings"
)

// separatorSegmentRe matches one separator segment between pipes:
// spaces, colons and dashes only. The dash requirement is checked
// separately because the character class alone would accept ":::".
var separatorSegmentRe = regexp.MustCompile(`^[\s:-]+$`)

// Table is one pipe-table found in a document. Data holds the header
// row at index 0 followed by the data rows; the separator line is
// structural markup and is never stored. Cells hold the unescaped
// logical value, so a source cell of `a \| b` is stored as "a | b".
type Table struct {
	// StartLine and EndLine are 0-indexed, inclusive line offsets into
	// the scanned document, spanning header, separator and data rows.
	StartLine int
	EndLine   int
	Data      [][]string
	// RawText is the original source text of the table span, joined by
	// line-feed, kept verbatim for diff-minimizing serialization.
	RawText string
}

// ColumnCount returns the logical width of the table: the maximum row
// length across Data. Row lengths may differ (ragged input is
// tolerated), so the width is always derived, never stored.
func (t *Table) ColumnCount() int {
	return columnCount(t.Data)
}

func columnCount(data [][]string) int {
	max := 0
	for _, row := range data {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Scan finds every well-formed pipe-table in documentText, in document
// order. A table starts at a table-row candidate whose immediate next
// line is a separator row; candidates without an adjacent separator
// never start a table. Scan is a pure function of its input.
func Scan(documentText string) []Table {
	lines := strings.Split(documentText, "\n")
	var tables []Table

	i := 0
	for i < len(lines) {
		header := ParseTableRow(lines[i])
		if header == nil || i+1 >= len(lines) || !IsSeparatorRow(lines[i+1]) {
			i++
			continue
		}

		start := i
		data := [][]string{header}
		// Consume data rows after the separator. Separator-shaped lines
		// inside the body are skipped rather than stored; any line that
		// is not a table-row candidate ends the table.
		i += 2
		for i < len(lines) && IsTableRow(lines[i]) {
			if !IsSeparatorRow(lines[i]) {
				data = append(data, ParseTableRow(lines[i]))
			}
			i++
		}

		end := i - 1
		tables = append(tables, Table{
			StartLine: start,
			EndLine:   end,
			Data:      data,
			RawText:   strings.Join(lines[start:end+1], "\n"),
		})
	}

	return tables
}

// IsTableRow reports whether line is a table-row candidate: trimmed
// text that starts and ends with a pipe. A lone "|" does not qualify.
func IsTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 2 &&
		strings.HasPrefix(trimmed, "|") &&
		strings.HasSuffix(trimmed, "|")
}

// ParseTableRow splits a table-row candidate into trimmed cell values,
// resolving escaped pipes (`\|`) to literal ones. Returns nil when the
// line is not a table-row candidate; otherwise the result always has
// at least one cell (blank cells come back as empty strings).
func ParseTableRow(line string) []string {
	if !IsTableRow(line) {
		return nil
	}
	trimmed := strings.TrimSpace(line)
	inner := trimmed[1 : len(trimmed)-1]

	// Single pass with an escape flag instead of a placeholder
	// substitution, so no sentinel token can collide with content.
	var cells []string
	var cell strings.Builder
	escaped := false
	for _, r := range inner {
		switch {
		case escaped:
			if r != '|' {
				// Backslash only escapes pipes here; anything else
				// keeps the backslash literally.
				cell.WriteByte('\\')
			}
			cell.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	if escaped {
		cell.WriteByte('\\')
	}
	cells = append(cells, strings.TrimSpace(cell.String()))
	return cells
}

// IsSeparatorRow reports whether line is a separator row: a table-row
// candidate whose every segment consists of spaces, colons and dashes
// with at least one dash. The split here is not escape-aware;
// separator rows never carry literal pipes.
func IsSeparatorRow(line string) bool {
	if !IsTableRow(line) {
		return false
	}
	trimmed := strings.TrimSpace(line)
	inner := trimmed[1 : len(trimmed)-1]
	for _, segment := range strings.Split(inner, "|") {
		if !separatorSegmentRe.MatchString(segment) {
			return false
		}
		if !strings.Contains(segment, "-") {
			return false
		}
	}
	return true
}
