package tableparser

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps every separator segment at least "---" wide.
const minColumnWidth = 3

// escapeCell renders a cell value in source form: literal pipes become
// `\|` so they survive the row split. Escaping happens once, before
// any width computation, so widths reflect the emitted text exactly.
func escapeCell(cell string) string {
	return strings.ReplaceAll(cell, "|", "\\|")
}

// ToMarkdown renders a grid as a canonical pipe-table: every cell
// left-aligned and space-padded to its column's width, with the
// separator row emitted after the header. Returns "" for a grid with
// no rows or no columns.
func ToMarkdown(data [][]string) string {
	cols := columnCount(data)
	if len(data) == 0 || cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range data {
		for c, cell := range row {
			if w := runewidth.StringWidth(escapeCell(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	lines := make([]string, 0, len(data)+1)
	for r, row := range data {
		lines = append(lines, formatRowPadded(row, widths))
		if r == 0 {
			segments := make([]string, cols)
			for c, w := range widths {
				segments[c] = strings.Repeat("-", w)
			}
			lines = append(lines, "| "+strings.Join(segments, " | ")+" |")
		}
	}
	return strings.Join(lines, "\n")
}

// formatRowPadded emits one table line with each cell padded to its
// column width. Missing cells render as empty, padded like the rest.
func formatRowPadded(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for c, w := range widths {
		cell := ""
		if c < len(row) {
			cell = escapeCell(row[c])
		}
		if pad := w - runewidth.StringWidth(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		cells[c] = cell
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// formatRowMinimal emits one table line with single-space padding and
// no column alignment.
func formatRowMinimal(row []string, cols int) string {
	cells := make([]string, cols)
	for c := range cells {
		if c < len(row) {
			cells[c] = escapeCell(row[c])
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// ToMarkdownPreserveFormat renders newData so that rows whose content
// is unchanged from originalData come out byte-identical to their
// lines in originalRawText, keeping version-control diffs down to the
// rows actually edited. Changed or added rows use minimal one-space
// padding; row formatting is independent per row, so editing one row
// never re-flows its neighbors. If the logical column count changed,
// positional correspondence is gone and the whole table is rendered
// canonically instead.
func ToMarkdownPreserveFormat(newData [][]string, originalRawText string, originalData [][]string) string {
	cols := columnCount(newData)
	if cols != columnCount(originalData) {
		return ToMarkdown(newData)
	}
	if len(newData) == 0 || cols == 0 {
		return ""
	}

	rawLines := strings.Split(originalRawText, "\n")

	// Original content lines in row order: drop the separator at index
	// 1 and any stray separator-shaped line, leaving the header at 0
	// followed by the data rows.
	var originalLines []string
	for i, line := range rawLines {
		if i == 1 || (i > 1 && IsSeparatorRow(line)) {
			continue
		}
		originalLines = append(originalLines, line)
	}

	var lines []string
	for r, row := range newData {
		if r < len(originalData) && r < len(originalLines) && rowsEqual(row, originalData[r]) {
			lines = append(lines, originalLines[r])
		} else {
			lines = append(lines, formatRowMinimal(row, cols))
		}
		if r == 0 {
			if len(rawLines) > 1 {
				lines = append(lines, rawLines[1])
			} else {
				segments := make([]string, cols)
				for c := range segments {
					segments[c] = "---"
				}
				lines = append(lines, "| "+strings.Join(segments, " | ")+" |")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func rowsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
