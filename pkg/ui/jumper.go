package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// jumpTarget is one selectable entry in the jump overlay.
type jumpTarget struct {
	ID         string
	Name       string
	Generation int
}

// JumperModel is the fuzzy jump-to-person overlay.
type JumperModel struct {
	allTargets []jumpTarget
	filtered   []jumpTarget

	searchInput   textinput.Model
	selectedIndex int

	width  int
	height int
	theme  Theme

	confirmed bool
	selected  *jumpTarget
}

// NewJumperModel builds the overlay from the traversal nodes of the tree.
func NewJumperModel(fd *model.FamilyData, theme Theme) JumperModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to person..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	var targets []jumpTarget
	query.Walk(fd, func(p *model.Person, generation int) {
		targets = append(targets, jumpTarget{ID: p.ID, Name: p.Name, Generation: generation})
	})

	m := JumperModel{
		allTargets:  targets,
		filtered:    targets,
		searchInput: ti,
		theme:       theme,
	}
	return m
}

// SetSize sets overlay dimensions.
func (m *JumperModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input. Enter confirms, Esc aborts; the caller checks
// IsConfirmed/Selected afterwards.
func (m JumperModel) Update(msg tea.Msg) (JumperModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.selectedIndex < len(m.filtered) {
				target := m.filtered[m.selectedIndex]
				m.selected = &target
				m.confirmed = true
			}
			return m, nil
		case "up", "ctrl+k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.selectedIndex < len(m.filtered)-1 {
				m.selectedIndex++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filterTargets()
	return m, cmd
}

func (m *JumperModel) filterTargets() {
	q := strings.TrimSpace(m.searchInput.Value())
	if q == "" {
		m.filtered = m.allTargets
		m.selectedIndex = 0
		return
	}

	names := make([]string, len(m.allTargets))
	for i, target := range m.allTargets {
		names[i] = target.Name
	}
	matches := fuzzy.Find(q, names)

	m.filtered = make([]jumpTarget, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.allTargets[match.Index])
	}
	m.selectedIndex = 0
}

// IsConfirmed returns true once a target was picked.
func (m *JumperModel) IsConfirmed() bool {
	return m.confirmed
}

// Selected returns the picked target, nil when aborted.
func (m *JumperModel) Selected() *jumpTarget {
	return m.selected
}

// View renders the overlay box.
func (m JumperModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Jump to person"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	visible := m.filtered
	maxRows := 10
	if len(visible) > maxRows {
		visible = visible[:maxRows]
	}
	for i, target := range visible {
		line := target.Name + " " + RenderGenerationBadge(t, target.Generation)
		if i == m.selectedIndex {
			line = t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("  no matches"))
	}

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())
}
