package overlay

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay is a dismissable text screen overlay, used for the help
// screen and other read-only content. Long content scrolls in a
// viewport.
type TextOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool
	// Callback function to be called when the overlay is dismissed
	OnDismiss func()

	content  string
	viewport viewport.Model
	width    int
	height   int
	// Whether the content is taller than the viewport
	needsScrolling bool
}

// NewTextOverlay creates a new text overlay with the given content
func NewTextOverlay(content string) *TextOverlay {
	t := &TextOverlay{
		content:  content,
		viewport: viewport.New(0, 0),
	}
	t.viewport.SetContent(content)
	return t
}

// HandleKeyPress processes a key press and updates the state.
// Returns true if the overlay should be closed.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	if t.needsScrolling {
		switch msg.String() {
		case "up", "k":
			t.viewport.LineUp(1)
			return false
		case "down", "j":
			t.viewport.LineDown(1)
			return false
		case "pgup":
			t.viewport.HalfViewUp()
			return false
		case "pgdown":
			t.viewport.HalfViewDown()
			return false
		case "home", "g":
			t.viewport.GotoTop()
			return false
		case "end", "G":
			t.viewport.GotoBottom()
			return false
		}
	}

	// Close on any other key
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the text overlay
func (t *TextOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	content := t.content
	if t.needsScrolling {
		scrollInfo := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("↑/↓ to scroll • Press any other key to close")
		content = lipgloss.JoinVertical(lipgloss.Left, t.viewport.View(), "", scrollInfo)
	}

	if t.width > 0 {
		style = style.Width(t.width)
	}
	return style.Render(content)
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
	t.updateViewport()
}

// SetSize updates the dimensions of the overlay
func (t *TextOverlay) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.updateViewport()
}

func (t *TextOverlay) updateViewport() {
	if t.height == 0 || t.width == 0 {
		return
	}

	// Border, padding and the scroll hint take 6 lines / 6 columns.
	viewportHeight := t.height - 6
	viewportWidth := t.width - 6
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	t.viewport.Width = viewportWidth
	t.viewport.Height = viewportHeight
	t.needsScrolling = lipgloss.Height(t.content) > viewportHeight
}
