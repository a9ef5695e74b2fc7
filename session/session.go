// Package session owns the state of one table-editing session: the
// mutable grid, the immutable original snapshot used for
// diff-minimizing serialization, the cursor, and a bounded undo stack.
package session

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/config"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/tableparser"
)

// Session is an in-progress edit of a single table. One session is
// mutated by one user-interaction stream at a time; the original
// table stays immutable for the lifetime of the session.
type Session struct {
	// original is the table as scanned, kept as the reference point
	// for diff-minimizing serialization. Never mutated.
	original tableparser.Table
	// Data is the working grid. Header at index 0; rows may be ragged,
	// the logical column count is always derived from row lengths.
	Data [][]string
	// Row and Col are the cursor position in the grid.
	Row int
	Col int

	undo      []snapshot
	redo      []snapshot
	undoLimit int
}

// snapshot is one undo step: the full grid plus the cursor that
// produced it. Grids are small, so whole-grid snapshots beat a
// command log in simplicity.
type snapshot struct {
	data [][]string
	row  int
	col  int
}

// New creates a session for the given scanned table.
func New(table tableparser.Table, undoLimit int) *Session {
	if undoLimit <= 0 {
		undoLimit = 1
	}
	return &Session{
		original:  table,
		Data:      cloneGrid(table.Data),
		undoLimit: undoLimit,
	}
}

// Table returns the original scanned table, including its line span
// in the source document.
func (s *Session) Table() tableparser.Table {
	return s.original
}

// RowCount returns the number of rows in the working grid, header included.
func (s *Session) RowCount() int {
	return len(s.Data)
}

// ColumnCount returns the logical width of the working grid.
func (s *Session) ColumnCount() int {
	max := 0
	for _, row := range s.Data {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the value at (row, col), or "" when the row is shorter
// than the logical width.
func (s *Session) Cell(row, col int) string {
	if row < 0 || row >= len(s.Data) {
		return ""
	}
	if col < 0 || col >= len(s.Data[row]) {
		return ""
	}
	return s.Data[row][col]
}

// SetCell replaces the value at (row, col), extending the row if it is
// shorter than the target column. Out-of-range rows are ignored.
func (s *Session) SetCell(row, col int, value string) {
	if row < 0 || row >= len(s.Data) || col < 0 || col >= s.ColumnCount() {
		return
	}
	if s.Cell(row, col) == value {
		return
	}
	s.pushUndo()
	for len(s.Data[row]) <= col {
		s.Data[row] = append(s.Data[row], "")
	}
	s.Data[row][col] = value
}

// ClearCell blanks the value under the cursor.
func (s *Session) ClearCell() {
	s.SetCell(s.Row, s.Col, "")
}

// MoveCursor moves the cursor by (dr, dc), clamped to the grid.
func (s *Session) MoveCursor(dr, dc int) {
	s.Row = clamp(s.Row+dr, 0, len(s.Data)-1)
	s.Col = clamp(s.Col+dc, 0, s.ColumnCount()-1)
}

// CursorHome moves the cursor to the first column.
func (s *Session) CursorHome() {
	s.Col = 0
}

// CursorEnd moves the cursor to the last column.
func (s *Session) CursorEnd() {
	s.Col = s.ColumnCount() - 1
	if s.Col < 0 {
		s.Col = 0
	}
}

// InsertRowBelow inserts an empty row after the cursor row.
func (s *Session) InsertRowBelow() {
	s.insertRow(s.Row + 1)
	s.Row++
}

// InsertRowAbove inserts an empty row before the cursor row. The
// header stays at index 0: inserting above the header places the new
// row just below it instead.
func (s *Session) InsertRowAbove() {
	at := s.Row
	if at == 0 {
		at = 1
	}
	s.insertRow(at)
	s.Row = at
}

func (s *Session) insertRow(at int) {
	s.pushUndo()
	row := make([]string, s.ColumnCount())
	s.Data = append(s.Data, nil)
	copy(s.Data[at+1:], s.Data[at:])
	s.Data[at] = row
}

// DeleteRow removes the cursor row. The header row and the last
// remaining row cannot be deleted; a table always keeps its header.
func (s *Session) DeleteRow() error {
	if s.Row == 0 {
		return fmt.Errorf("cannot delete the header row")
	}
	if len(s.Data) <= 1 {
		return fmt.Errorf("cannot delete the only row")
	}
	s.pushUndo()
	s.Data = append(s.Data[:s.Row], s.Data[s.Row+1:]...)
	if s.Row >= len(s.Data) {
		s.Row = len(s.Data) - 1
	}
	return nil
}

// InsertColumn inserts an empty column after the cursor column.
func (s *Session) InsertColumn() {
	s.pushUndo()
	at := s.Col + 1
	for i, row := range s.Data {
		// Shorter rows only grow if the insertion point lies inside them.
		if at > len(row) {
			continue
		}
		row = append(row, "")
		copy(row[at+1:], row[at:])
		row[at] = ""
		s.Data[i] = row
	}
	s.Col = at
}

// DeleteColumn removes the cursor column from every row. The last
// remaining column cannot be deleted.
func (s *Session) DeleteColumn() error {
	if s.ColumnCount() <= 1 {
		return fmt.Errorf("cannot delete the only column")
	}
	s.pushUndo()
	at := s.Col
	for i, row := range s.Data {
		if at >= len(row) {
			continue
		}
		s.Data[i] = append(row[:at], row[at+1:]...)
	}
	if s.Col >= s.ColumnCount() {
		s.Col = s.ColumnCount() - 1
	}
	return nil
}

// Undo reverts the most recent mutation. Returns false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	s.redo = append(s.redo, s.capture())
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.restore(last)
	return true
}

// Redo re-applies the most recently undone mutation.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.undo = append(s.undo, s.capture())
	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.restore(last)
	return true
}

// Modified reports whether the working grid differs from the original.
func (s *Session) Modified() bool {
	if len(s.Data) != len(s.original.Data) {
		return true
	}
	for r, row := range s.Data {
		orig := s.original.Data[r]
		if len(row) != len(orig) {
			return true
		}
		for c := range row {
			if row[c] != orig[c] {
				return true
			}
		}
	}
	return false
}

// CopyCell places the cursor cell's value on the system clipboard.
func (s *Session) CopyCell() error {
	if err := clipboard.WriteAll(s.Cell(s.Row, s.Col)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Paste reads the system clipboard and writes it at the cursor.
// Multi-cell content uses the tab-separated convention spreadsheets
// share: tabs split columns, line-feeds split rows. A block that does
// not fit inside the grid from the cursor position is rejected and
// the grid is left untouched.
func (s *Session) Paste() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	return s.PasteText(text)
}

// PasteText applies clipboard-shaped text at the cursor. Split out
// from Paste so tests need no system clipboard.
func (s *Session) PasteText(text string) error {
	text = strings.TrimRight(text, "\n")
	block := [][]string{}
	for _, line := range strings.Split(text, "\n") {
		block = append(block, strings.Split(line, "\t"))
	}

	rows, cols := len(s.Data), s.ColumnCount()
	for r, blockRow := range block {
		if s.Row+r >= rows {
			return fmt.Errorf("paste size mismatch: %d rows from row %d exceeds table height %d", len(block), s.Row, rows)
		}
		if s.Col+len(blockRow) > cols {
			return fmt.Errorf("paste size mismatch: %d columns from column %d exceeds table width %d", len(blockRow), s.Col, cols)
		}
	}

	s.pushUndo()
	for r, blockRow := range block {
		for c, value := range blockRow {
			row := s.Data[s.Row+r]
			for len(row) <= s.Col+c {
				row = append(row, "")
			}
			row[s.Col+c] = value
			s.Data[s.Row+r] = row
		}
	}
	return nil
}

// Serialize renders the working grid as Markdown using the given
// padding mode (config.PaddingPreserve or config.PaddingCanonical).
func (s *Session) Serialize(paddingMode string) string {
	if paddingMode == config.PaddingCanonical {
		return tableparser.ToMarkdown(s.Data)
	}
	return tableparser.ToMarkdownPreserveFormat(s.Data, s.original.RawText, s.original.Data)
}

func (s *Session) pushUndo() {
	s.undo = append(s.undo, s.capture())
	if len(s.undo) > s.undoLimit {
		s.undo = s.undo[1:]
	}
	// A new mutation invalidates the redo branch.
	s.redo = nil
}

func (s *Session) capture() snapshot {
	return snapshot{data: cloneGrid(s.Data), row: s.Row, col: s.Col}
}

func (s *Session) restore(snap snapshot) {
	s.Data = cloneGrid(snap.data)
	s.Row = clamp(snap.row, 0, len(s.Data)-1)
	s.Col = clamp(snap.col, 0, s.ColumnCount()-1)
}

func cloneGrid(data [][]string) [][]string {
	out := make([][]string, len(data))
	for i, row := range data {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
