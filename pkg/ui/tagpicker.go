package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TagPickerModel is the tag multi-select overlay. Selected tags filter with
// OR semantics: a person matches when they carry any selected tag.
type TagPickerModel struct {
	vocab    []string
	selected map[string]bool
	cursor   int
	theme    Theme
	done     bool
}

// NewTagPickerModel creates the picker over the global tag vocabulary,
// pre-checking the currently active tags.
func NewTagPickerModel(vocab, active []string, theme Theme) TagPickerModel {
	selected := make(map[string]bool, len(active))
	for _, tag := range active {
		selected[strings.ToLower(tag)] = true
	}
	return TagPickerModel{
		vocab:    vocab,
		selected: selected,
		theme:    theme,
	}
}

// Update handles input. Space toggles, enter/esc closes.
func (m TagPickerModel) Update(msg tea.Msg) (TagPickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.vocab)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case " ":
			if m.cursor < len(m.vocab) {
				key := strings.ToLower(m.vocab[m.cursor])
				m.selected[key] = !m.selected[key]
			}
		case "c":
			m.selected = make(map[string]bool)
		case "enter", "esc", "t":
			m.done = true
		}
	}
	return m, nil
}

// IsDone returns true once the picker should close.
func (m *TagPickerModel) IsDone() bool {
	return m.done
}

// Selection returns the chosen tags in vocabulary order.
func (m *TagPickerModel) Selection() []string {
	var tags []string
	for _, tag := range m.vocab {
		if m.selected[strings.ToLower(tag)] {
			tags = append(tags, tag)
		}
	}
	return tags
}

// View renders the overlay box.
func (m TagPickerModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Filter by tags"))
	b.WriteString("\n\n")

	if len(m.vocab) == 0 {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("no tags in this family"))
	}
	for i, tag := range m.vocab {
		check := "[ ]"
		if m.selected[strings.ToLower(tag)] {
			check = "[x]"
		}
		line := check + " " + tag
		if i == m.cursor {
			line = t.Renderer.NewStyle().Foreground(t.Primary).Bold(true).Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Renderer.NewStyle().Faint(true).Italic(true).
		Render("space toggle · c clear · enter apply"))

	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())
}
