package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay is a yes/no confirmation modal.
type ConfirmationOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool
	// OnConfirm is called when the user confirms
	OnConfirm func()
	// OnCancel is called when the user cancels
	OnCancel func()

	message   string
	confirmed bool
	width     int
}

// NewConfirmationOverlay creates a confirmation overlay with the given message
func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		message: message,
	}
}

// HandleKeyPress processes a key press. Returns true if the overlay
// should be closed.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y", "enter":
		c.confirmed = true
		c.Dismissed = true
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
		return true
	case "n", "N", "esc", "q":
		c.confirmed = false
		c.Dismissed = true
		if c.OnCancel != nil {
			c.OnCancel()
		}
		return true
	}
	return false
}

// IsConfirmed reports whether the user confirmed the action.
func (c *ConfirmationOverlay) IsConfirmed() bool {
	return c.confirmed
}

// SetWidth sets the width of the overlay box.
func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

// Render renders the confirmation overlay
func (c *ConfirmationOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if c.width > 0 {
		style = style.Width(c.width)
	}

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		c.message,
		"",
		hintStyle.Render("y to confirm • n/esc to cancel"),
	)
	return style.Render(content)
}
