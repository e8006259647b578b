// Package ui holds the terminal presentation layer: colors, spinners,
// markdown rendering and the interactive pickers used by the deck commands.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors in hex, tuned for dark backgrounds.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Colors is the palette a Theme renders with.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	NoColor bool
}

// Theme bundles the palette with the styles derived from it.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme builds a Theme. With NoColor set every style renders plain text.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
		NoColor: cfg.NoColor,
	}
}

func (t *Theme) fg(color string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style {
	return t.fg(t.Colors.Primary).Bold(true)
}

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style {
	return t.fg(t.Colors.Muted)
}

// Success styles positive states.
func (t *Theme) Success() lipgloss.Style {
	return t.fg(t.Colors.Success)
}

// Warning styles states that need attention.
func (t *Theme) Warning() lipgloss.Style {
	return t.fg(t.Colors.Warning)
}

// Error styles failures.
func (t *Theme) Error() lipgloss.Style {
	return t.fg(t.Colors.Error)
}

// Card is a rounded box used for summaries.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return s
}

// HuhTheme maps the palette onto the form widgets.
func (t *Theme) HuhTheme() *huh.Theme {
	base := huh.ThemeBase()
	if t.NoColor {
		return base
	}

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: t.Colors.Primary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: t.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: t.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: t.Colors.Text}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: t.Colors.Muted}

	base.Focused.Title = base.Focused.Title.Foreground(primary).Bold(true)
	base.Focused.Description = base.Focused.Description.Foreground(muted)
	base.Focused.ErrorIndicator = base.Focused.ErrorIndicator.Foreground(red)
	base.Focused.ErrorMessage = base.Focused.ErrorMessage.Foreground(red)
	base.Focused.SelectSelector = base.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	base.Focused.Option = base.Focused.Option.Foreground(text)
	base.Focused.SelectedOption = base.Focused.SelectedOption.Foreground(green)
	base.Focused.FocusedButton = base.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	base.Focused.BlurredButton = base.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	base.Blurred = base.Focused
	base.Blurred.Base = base.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	base.Blurred.Card = base.Blurred.Base

	return base
}
