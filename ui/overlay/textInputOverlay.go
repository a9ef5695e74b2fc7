package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a single-line text input modal, used for editing
// a cell value. Enter submits, Esc cancels.
type TextInputOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool

	title     string
	input     textinput.Model
	submitted bool
	width     int
	height    int
}

// NewTextInputOverlay creates a text input overlay with the given
// title and initial value. The cursor starts at the end of the value.
func NewTextInputOverlay(title string, value string) *TextInputOverlay {
	input := textinput.New()
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()

	return &TextInputOverlay{
		title: title,
		input: input,
	}
}

// HandleKeyPress processes a key press. Returns true if the overlay
// should be closed.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		t.submitted = true
		t.Dismissed = true
		return true
	case tea.KeyEsc:
		t.Dismissed = true
		return true
	default:
		t.input, _ = t.input.Update(msg)
		return false
	}
}

// IsSubmitted reports whether the input was submitted rather than
// cancelled.
func (t *TextInputOverlay) IsSubmitted() bool {
	return t.submitted
}

// GetValue returns the current input value.
func (t *TextInputOverlay) GetValue() string {
	return t.input.Value()
}

// SetSize updates the dimensions of the overlay
func (t *TextInputOverlay) SetSize(width, height int) {
	t.width = width
	t.height = height
	innerWidth := width - 6
	if innerWidth < 10 {
		innerWidth = 10
	}
	t.input.Width = innerWidth
}

// Render renders the text input overlay
func (t *TextInputOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if t.width > 0 {
		style = style.Width(t.width)
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.title),
		"",
		t.input.View(),
		"",
		hintStyle.Render("enter to confirm • esc to cancel"),
	)
	return style.Render(content)
}
