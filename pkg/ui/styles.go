package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nuwandm/mahagedara/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// Tree glyphs
const (
	GlyphExpanded  = "▾"
	GlyphCollapsed = "▸"
	GlyphLeaf      = "·"
	GlyphSpouse    = "⚭"
	GlyphDeceased  = "✝"
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES - For split view layouts
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the default style for unfocused panels.
func PanelStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}

// FocusedPanelStyle is the style for the focused panel.
func FocusedPanelStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary)
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

// RenderGenderBadge returns a one-character gender marker. Unspecified
// genders get the "other" styling; the filter logic elsewhere still treats
// them as non-matching for specific filters.
func RenderGenderBadge(t Theme, g model.Gender) string {
	var color lipgloss.AdaptiveColor
	var label string
	switch g {
	case model.GenderMale:
		color, label = t.Male, "♂"
	case model.GenderFemale:
		color, label = t.Female, "♀"
	default:
		color, label = t.Other, "•"
	}
	return t.Renderer.NewStyle().Foreground(color).Render(label)
}

// RenderGenerationBadge renders "G2"-style generation markers.
func RenderGenerationBadge(t Theme, generation int) string {
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render("G" + strconv.Itoa(generation))
}

// RenderTagChips renders tags as a muted dot-separated run.
func RenderTagChips(t Theme, tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Render(strings.Join(tags, " · "))
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND BARS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line.
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderMiniBar renders a mini horizontal bar for a value between 0 and 1.
func RenderMiniBar(t Theme, value float64, width int) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(t.Primary).Render(bar)
}
