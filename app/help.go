package app

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})
	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// helpContent returns the help screen body.
func helpContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("mdtable"),
		"",
		"A spreadsheet-like editor for Markdown pipe-tables.",
		"",
		headerStyle.Render("Navigation:"),
		keyStyle.Render("↑/k, ↓/j")+descStyle.Render("  - Move between rows"),
		keyStyle.Render("←/h, →/l")+descStyle.Render("  - Move between columns"),
		keyStyle.Render("home/end")+descStyle.Render("  - Jump to first/last column"),
		keyStyle.Render("[ / ]")+descStyle.Render("     - Previous/next table in the document"),
		keyStyle.Render("tab")+descStyle.Render("       - Switch between grid and markdown view"),
		"",
		headerStyle.Render("Editing:"),
		keyStyle.Render("↵/i")+descStyle.Render("       - Edit the selected cell"),
		keyStyle.Render("⌫")+descStyle.Render("         - Clear the selected cell"),
		keyStyle.Render("o / O")+descStyle.Render("     - Insert row below / above"),
		keyStyle.Render("D")+descStyle.Render("         - Delete the current row"),
		keyStyle.Render("a / X")+descStyle.Render("     - Insert / delete column"),
		keyStyle.Render("u")+descStyle.Render("         - Undo"),
		keyStyle.Render("ctrl+r")+descStyle.Render("    - Redo"),
		keyStyle.Render("y / p")+descStyle.Render("     - Copy cell / paste (tab-separated blocks)"),
		"",
		headerStyle.Render("Saving:"),
		keyStyle.Render("ctrl+s/w")+descStyle.Render("  - Save edited tables back to the file"),
		keyStyle.Render("F")+descStyle.Render("         - Reformat the current table with aligned columns"),
		"",
		headerStyle.Render("Other:"),
		keyStyle.Render("?")+descStyle.Render("         - Show this help screen"),
		keyStyle.Render("q")+descStyle.Render("         - Quit"),
	)
}
