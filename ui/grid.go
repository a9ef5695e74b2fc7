package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/session"
)

// maxCellDisplayWidth caps how wide a single column may render; longer
// values are truncated with an ellipsis (the stored value is not
// touched).
const maxCellDisplayWidth = 28

const minCellDisplayWidth = 3

var (
	gridHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)
	gridSelectedStyle = lipgloss.NewStyle().
				Reverse(true)
	gridRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	gridStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	gridPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)
)

// GridPane renders the editing session's grid as a spreadsheet: header
// row pinned at the top, selected cell highlighted, rows and columns
// scrolling to keep the cursor visible.
type GridPane struct {
	session *session.Session

	width  int
	height int

	// Scroll window over data rows and columns.
	rowOffset int
	colOffset int
}

func NewGridPane() *GridPane {
	return &GridPane{}
}

// SetSession points the pane at the session to display. Pass nil to
// show the placeholder.
func (g *GridPane) SetSession(s *session.Session) {
	g.session = s
	g.rowOffset = 0
	g.colOffset = 0
}

func (g *GridPane) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// columnWidths computes per-column display widths from cell contents.
func (g *GridPane) columnWidths() []int {
	s := g.session
	widths := make([]int, s.ColumnCount())
	for i := range widths {
		widths[i] = minCellDisplayWidth
	}
	for _, row := range s.Data {
		for c, cell := range row {
			w := runewidth.StringWidth(cell)
			if w > maxCellDisplayWidth {
				w = maxCellDisplayWidth
			}
			if w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// ensureVisible adjusts the scroll window so the cursor cell is on
// screen given the pane's size.
func (g *GridPane) ensureVisible(widths []int, visibleRows int) {
	s := g.session

	// Rows: header is pinned, so only data rows (index >= 1) scroll.
	if cursor := s.Row - 1; cursor >= 0 {
		if cursor < g.rowOffset {
			g.rowOffset = cursor
		}
		if cursor >= g.rowOffset+visibleRows {
			g.rowOffset = cursor - visibleRows + 1
		}
	}

	// Columns: slide the offset until the cursor column fits.
	if s.Col < g.colOffset {
		g.colOffset = s.Col
	}
	for g.colOffset < s.Col {
		used := 0
		fits := true
		for c := g.colOffset; c <= s.Col; c++ {
			used += widths[c] + 3 // cell plus " │ " separator
			if used > g.width {
				fits = false
				break
			}
		}
		if fits {
			break
		}
		g.colOffset++
	}
}

// String renders the grid pane.
func (g *GridPane) String() string {
	if g.width == 0 || g.height == 0 {
		return ""
	}
	if g.session == nil {
		return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center,
			gridPlaceholderStyle.Render("No table selected"))
	}

	s := g.session
	widths := g.columnWidths()

	// Header, rule and status line take 3 of the pane's rows.
	visibleRows := g.height - 3
	if visibleRows < 1 {
		visibleRows = 1
	}
	g.ensureVisible(widths, visibleRows)

	var b strings.Builder
	b.WriteString(g.renderRow(0, widths))
	b.WriteByte('\n')
	b.WriteString(g.renderRule(widths))

	last := g.rowOffset + visibleRows
	if last > len(s.Data)-1 {
		last = len(s.Data) - 1
	}
	for r := g.rowOffset + 1; r <= last; r++ {
		b.WriteByte('\n')
		b.WriteString(g.renderRow(r, widths))
	}

	status := fmt.Sprintf("row %d/%d · col %d/%d", s.Row+1, s.RowCount(), s.Col+1, s.ColumnCount())
	if s.Modified() {
		status += " · modified"
	}
	b.WriteByte('\n')
	b.WriteString(gridStatusStyle.Render(status))

	return lipgloss.NewStyle().MaxWidth(g.width).Render(b.String())
}

// renderRow renders one grid row, highlighting the cursor cell.
func (g *GridPane) renderRow(r int, widths []int) string {
	s := g.session
	sep := gridRuleStyle.Render(" │ ")

	cells := make([]string, 0, len(widths)-g.colOffset)
	for c := g.colOffset; c < len(widths); c++ {
		value := truncate.StringWithTail(s.Cell(r, c), uint(widths[c]), "…")
		if pad := widths[c] - runewidth.StringWidth(value); pad > 0 {
			value += strings.Repeat(" ", pad)
		}

		switch {
		case r == s.Row && c == s.Col:
			value = gridSelectedStyle.Render(value)
		case r == 0:
			value = gridHeaderStyle.Render(value)
		}
		cells = append(cells, value)
	}
	return strings.Join(cells, sep)
}

// renderRule renders the horizontal rule under the header row.
func (g *GridPane) renderRule(widths []int) string {
	segments := make([]string, 0, len(widths)-g.colOffset)
	for c := g.colOffset; c < len(widths); c++ {
		segments = append(segments, strings.Repeat("─", widths[c]))
	}
	return gridRuleStyle.Render(strings.Join(segments, "─┼─"))
}
