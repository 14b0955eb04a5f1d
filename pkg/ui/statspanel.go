package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nuwandm/mahagedara/pkg/stats"
)

// StatsPanelModel renders the derived family figures as an overlay.
type StatsPanelModel struct {
	summary stats.Summary
	theme   Theme
	visible bool
}

func NewStatsPanelModel(theme Theme) StatsPanelModel {
	return StatsPanelModel{theme: theme}
}

// SetSummary refreshes the figures (after a data reload).
func (m *StatsPanelModel) SetSummary(s stats.Summary) {
	m.summary = s
}

// Toggle flips visibility.
func (m *StatsPanelModel) Toggle() {
	m.visible = !m.visible
}

// Hide closes the panel.
func (m *StatsPanelModel) Hide() {
	m.visible = false
}

// IsVisible returns true when the panel is showing.
func (m StatsPanelModel) IsVisible() bool {
	return m.visible
}

// View renders the panel.
func (m StatsPanelModel) View() string {
	t := m.theme
	s := m.summary
	var b strings.Builder

	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Family at a glance"))
	b.WriteString("\n\n")

	label := func(k string) string {
		return t.Renderer.NewStyle().Foreground(t.Subtext).Render(PadRight(k, 16))
	}

	b.WriteString(label("People") + fmt.Sprintf("%d (+%d spouses)\n", s.TotalPeople, s.TotalSpouses))
	b.WriteString(label("Generations") + fmt.Sprintf("%d\n", s.Generations))
	b.WriteString(label("Living") + fmt.Sprintf("%d\n", s.Living))
	b.WriteString(label("Deceased") + fmt.Sprintf("%d\n", s.Deceased))
	if s.LifespanKnown > 0 {
		b.WriteString(label("Mean lifespan") + fmt.Sprintf("%.1f ± %.1f years (n=%d)\n",
			s.LifespanMean, s.LifespanStdDev, s.LifespanKnown))
	}
	if s.EarliestBirth > 0 {
		b.WriteString(label("Birth years") + fmt.Sprintf("%d–%d\n", s.EarliestBirth, s.LatestBirth))
	}
	b.WriteString(label("Events") + fmt.Sprintf("%d\n", s.TotalEvents))

	if len(s.PerGeneration) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary).Render("Per generation"))
		b.WriteString("\n")
		peak := 0
		for _, n := range s.PerGeneration {
			if n > peak {
				peak = n
			}
		}
		for gen, n := range s.PerGeneration {
			frac := 0.0
			if peak > 0 {
				frac = float64(n) / float64(peak)
			}
			b.WriteString(fmt.Sprintf("  G%d %s %d\n", gen, RenderMiniBar(t, frac, 20), n))
		}
	}

	if len(s.TagCounts) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary).Render("Top tags"))
		b.WriteString("\n")
		top := s.TagCounts
		if len(top) > 5 {
			top = top[:5]
		}
		for _, tc := range top {
			b.WriteString(fmt.Sprintf("  %s %d\n", PadRight(tc.Tag, 14), tc.Count))
		}
	}

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())
}
