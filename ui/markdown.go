package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/log"
)

// RenderMarkdown renders markdown content for terminal display,
// picking the glamour style from the terminal background.
// Returns the rendered string and any error that occurred.
func RenderMarkdown(content string, width int) (string, error) {
	return RenderMarkdownWithStyle(content, width, termenv.HasDarkBackground())
}

// RenderMarkdownWithStyle renders markdown with an explicit
// dark/light style choice.
func RenderMarkdownWithStyle(content string, width int, isDark bool) (string, error) {
	styleName := "dark"
	if !isDark {
		styleName = "light"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(styleName),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		log.ErrorLog.Printf("Failed to create markdown renderer: %v", err)
		return content, err
	}

	rendered, err := r.Render(content)
	if err != nil {
		log.ErrorLog.Printf("Failed to render markdown: %v", err)
		return content, err
	}

	// Remove trailing newlines that glamour adds
	rendered = strings.TrimRight(rendered, "\n")

	return rendered, nil
}
