package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PreviewPane shows the current table rendered as Markdown through
// glamour, so the user can see what the edited table will look like.
type PreviewPane struct {
	viewport viewport.Model

	width  int
	height int

	// markdown is the source text; kept so a resize can re-render at
	// the new width.
	markdown string
}

func NewPreviewPane() *PreviewPane {
	return &PreviewPane{
		viewport: viewport.New(0, 0),
	}
}

func (p *PreviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height
	p.render()
}

// SetContent updates the Markdown source shown in the pane.
func (p *PreviewPane) SetContent(markdown string) {
	p.markdown = markdown
	p.render()
}

func (p *PreviewPane) render() {
	if p.width == 0 {
		return
	}
	if p.markdown == "" {
		p.viewport.SetContent(gridPlaceholderStyle.Render("Nothing to preview"))
		return
	}
	rendered, err := RenderMarkdown(p.markdown, p.width)
	if err != nil {
		// RenderMarkdown already logged; fall back to the raw source.
		rendered = p.markdown
	}
	p.viewport.SetContent(rendered)
}

// ScrollUp scrolls the preview up one line.
func (p *PreviewPane) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls the preview down one line.
func (p *PreviewPane) ScrollDown() {
	p.viewport.LineDown(1)
}

// String renders the preview pane.
func (p *PreviewPane) String() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(p.width).Render(p.viewport.View())
}
