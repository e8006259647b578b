package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/moai-deck/internal/ui"
)

// currentTheme returns the injected theme, or a default one honoring
// NO_COLOR when dependencies are not wired yet.
func currentTheme() *ui.Theme {
	if deps != nil && deps.Theme != nil {
		return deps.Theme
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
}

// renderCard draws a titled box around body lines.
func renderCard(title string, lines ...string) string {
	t := currentTheme()
	parts := []string{t.Title().Render(title)}
	if len(lines) > 0 {
		parts = append(parts, "", strings.Join(lines, "\n"))
	}
	return t.Card().Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderSuccessCard draws a card headed by a check mark.
func renderSuccessCard(title string, details ...string) string {
	t := currentTheme()
	return renderCard(t.Success().Render("✓")+" "+title, details...)
}

// renderErrorCard draws a card for a failed command.
func renderErrorCard(err error) string {
	t := currentTheme()
	return renderCard(t.Error().Render("✗")+" Error", err.Error())
}

// renderKeyValues aligns label/value rows.
func renderKeyValues(rows [][2]string) []string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	t := currentTheme()
	label := t.Muted().Width(width + 2)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = label.Render(r[0]) + r[1]
	}
	return out
}
