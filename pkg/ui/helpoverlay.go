package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel shows keyboard shortcuts help
type HelpOverlayModel struct {
	visible bool
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{theme: theme}
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}
	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	t := m.theme
	var b strings.Builder

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1)
	b.WriteString(titleStyle.Render("Family Tree Help"))
	b.WriteString("\n\n")

	sectionStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary)
	keyStyle := t.Renderer.NewStyle().Foreground(t.Primary).Width(12)
	descStyle := t.Renderer.NewStyle().Foreground(t.Subtext)

	section := func(title string, entries []struct{ key, desc string }) {
		b.WriteString(sectionStyle.Render(title) + "\n")
		for _, e := range entries {
			b.WriteString("  " + keyStyle.Render(e.key) + descStyle.Render(e.desc) + "\n")
		}
		b.WriteString("\n")
	}

	section("NAVIGATION", []struct{ key, desc string }{
		{"j/↓", "Move down"},
		{"k/↑", "Move up"},
		{"l/enter", "Expand node"},
		{"h", "Collapse node"},
		{"E", "Expand all"},
		{"C", "Collapse all"},
		{"f", "Fuzzy jump to person"},
		{"Tab", "Switch tree/gallery"},
		{"p", "Gallery: only selected person's events"},
	})

	section("FILTERS", []struct{ key, desc string }{
		{"/", "Search (name and tags)"},
		{"g", "Cycle gender filter"},
		{"G", "Cycle generation filter"},
		{"t", "Tag filter picker"},
		{"esc", "Clear search / close"},
	})

	section("VIEW", []struct{ key, desc string }{
		{"d", "Scroll detail down"},
		{"u", "Scroll detail up"},
		{"s", "Stats panel"},
		{"y", "Copy lineage to clipboard"},
		{"r", "Reload data file"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	})

	hintStyle := t.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())
}
