package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/keys"
)

var (
	menuKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)
	menuDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	menuSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	menuStyle = lipgloss.NewStyle().
			AlignHorizontal(lipgloss.Center)
)

// defaultMenuKeys are the hints shown during normal grid navigation.
var defaultMenuKeys = []keys.KeyName{
	keys.KeyEdit,
	keys.KeyInsertRow,
	keys.KeyDeleteRow,
	keys.KeyInsertCol,
	keys.KeyDeleteCol,
	keys.KeyUndo,
	keys.KeyCopy,
	keys.KeyPaste,
	keys.KeySave,
	keys.KeyTab,
	keys.KeyHelp,
	keys.KeyQuit,
}

// editingMenuKeys are the hints shown while a cell editor is open.
var editingMenuKeys = []keys.KeyName{
	keys.KeySubmitCell,
	keys.KeyQuit,
}

// Menu is the bottom bar of keybinding hints.
type Menu struct {
	options []keys.KeyName

	width  int
	height int
}

func NewMenu() *Menu {
	return &Menu{options: defaultMenuKeys}
}

// SetState switches the hint set shown for the current app state.
func (m *Menu) SetState(editing bool) {
	if editing {
		m.options = editingMenuKeys
	} else {
		m.options = defaultMenuKeys
	}
}

func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// String renders the menu bar.
func (m *Menu) String() string {
	if m.width == 0 {
		return ""
	}

	sep := menuSepStyle.Render(" • ")
	entries := make([]string, 0, len(m.options))
	for _, k := range m.options {
		binding := keys.GlobalkeyBindings[k]
		entries = append(entries,
			menuKeyStyle.Render(binding.Help().Key)+" "+menuDescStyle.Render(binding.Help().Desc))
	}

	return menuStyle.Width(m.width).Render(strings.Join(entries, sep))
}
