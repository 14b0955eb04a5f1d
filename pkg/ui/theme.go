package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the renderer and semantic colors used across all panes.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	Male   lipgloss.AdaptiveColor
	Female lipgloss.AdaptiveColor
	Other  lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// NewTheme builds the default dark theme. accent overrides the primary
// color when non-empty (set from config).
func NewTheme(accent string) Theme {
	primary := "#BD93F9"
	if accent != "" {
		primary = accent
	}
	r := lipgloss.DefaultRenderer()
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: primary, Dark: primary},
		Secondary: lipgloss.AdaptiveColor{Light: "#6272A4", Dark: "#6272A4"},
		Text:      lipgloss.AdaptiveColor{Light: "#282A36", Dark: "#F8F8F2"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#44475A", Dark: "#BFBFBF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#999999", Dark: "#6272A4"},
		Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#FF79C6", Dark: "#FF79C6"},
		Danger:    lipgloss.AdaptiveColor{Light: "#CC4444", Dark: "#FF5555"},
		Male:      lipgloss.AdaptiveColor{Light: "#2B6CB0", Dark: "#8BE9FD"},
		Female:    lipgloss.AdaptiveColor{Light: "#B83280", Dark: "#FF79C6"},
		Other:     lipgloss.AdaptiveColor{Light: "#6B46C1", Dark: "#BD93F9"},
		Base:      r.NewStyle(),
	}
}
