package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	highlightColor    = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	inactiveTabStyle  = lipgloss.NewStyle().
				Border(inactiveTabBorder, true).
				BorderForeground(highlightColor).
				AlignHorizontal(lipgloss.Center)
	activeTabStyle = inactiveTabStyle.
			Border(activeTabBorder, true).
			AlignHorizontal(lipgloss.Center)
	windowStyle = lipgloss.NewStyle().
			BorderForeground(highlightColor).
			Border(lipgloss.NormalBorder(), false, true, true, true)
)

const (
	GridTab = iota
	MarkdownTab
)

// TabbedWindow has tabs at the top of a pane which can be selected.
// The grid tab holds the editable spreadsheet view; the markdown tab
// shows the glamour-rendered table.
type TabbedWindow struct {
	tabs []string

	activeTab int
	height    int
	width     int

	grid    *GridPane
	preview *PreviewPane
}

func NewTabbedWindow(grid *GridPane, preview *PreviewPane) *TabbedWindow {
	return &TabbedWindow{
		tabs: []string{
			"Grid",
			"Markdown",
		},
		grid:    grid,
		preview: preview,
	}
}

func (w *TabbedWindow) SetSize(width, height int) {
	w.width = width
	w.height = height

	// Subtract the tab row and the window frame from the content area.
	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1
	contentHeight := height - tabHeight - windowStyle.GetVerticalFrameSize()
	contentWidth := w.width - windowStyle.GetHorizontalFrameSize()
	if contentHeight < 1 {
		contentHeight = 1
	}
	if contentWidth < 1 {
		contentWidth = 1
	}

	w.grid.SetSize(contentWidth, contentHeight)
	w.preview.SetSize(contentWidth, contentHeight)
}

// ContentSize returns the inner pane dimensions.
func (w *TabbedWindow) ContentSize() (int, int) {
	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1
	return w.width - windowStyle.GetHorizontalFrameSize(),
		w.height - tabHeight - windowStyle.GetVerticalFrameSize()
}

// Toggle switches between the grid and markdown tabs.
func (w *TabbedWindow) Toggle() {
	w.activeTab = (w.activeTab + 1) % len(w.tabs)
}

// ActiveTab returns the index of the selected tab.
func (w *TabbedWindow) ActiveTab() int {
	return w.activeTab
}

// String renders the tab bar and the active pane.
func (w *TabbedWindow) String() string {
	if w.width == 0 || w.height == 0 {
		return ""
	}

	var renderedTabs []string
	tabWidth := w.width / len(w.tabs)
	lastTabWidth := w.width - tabWidth*(len(w.tabs)-1)

	for i, t := range w.tabs {
		style := inactiveTabStyle
		if i == w.activeTab {
			style = activeTabStyle
		}
		width := tabWidth
		if i == len(w.tabs)-1 {
			width = lastTabWidth
		}
		style = style.Width(width - style.GetHorizontalFrameSize())
		renderedTabs = append(renderedTabs, style.Render(t))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	var content string
	if w.activeTab == GridTab {
		content = w.grid.String()
	} else {
		content = w.preview.String()
	}

	_, contentHeight := w.ContentSize()
	window := windowStyle.Width(w.width - windowStyle.GetHorizontalFrameSize()).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, row, window)
}
