package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9"))

// ErrBox is a single-line box at the bottom of the screen showing the
// most recent error.
type ErrBox struct {
	err error

	width  int
	height int
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

// SetError sets the error to display. Pass nil to clear.
func (e *ErrBox) SetError(err error) {
	e.err = err
}

// Clear removes any displayed error.
func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// String renders the error box.
func (e *ErrBox) String() string {
	if e.err == nil || e.width == 0 {
		return ""
	}
	return errStyle.Render(truncate.StringWithTail(e.err.Error(), uint(e.width), "…"))
}
