package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultMarkdownWidth = 80

// RenderMarkdown renders markdown for the terminal. Rendering failures fall
// back to the raw source.
func RenderMarkdown(theme *Theme, content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = defaultMarkdownWidth
	}

	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
