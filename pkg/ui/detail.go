package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// DetailModel shows the selected person's card in a scrollable viewport,
// with markdown notes rendered via glamour.
type DetailModel struct {
	viewport viewport.Model
	theme    Theme
	width    int
}

func NewDetailModel(theme Theme) DetailModel {
	return DetailModel{
		viewport: viewport.New(40, 10),
		theme:    theme,
	}
}

// SetSize sets the pane dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
}

// SetPerson refreshes the card for the given person; lineage names the
// ancestor chain for the footer.
func (m *DetailModel) SetPerson(fd *model.FamilyData, p *model.Person, generation int, lineage []string) {
	m.viewport.SetContent(m.renderCard(fd, p, generation, lineage))
	m.viewport.GotoTop()
}

// Clear empties the pane.
func (m *DetailModel) Clear() {
	m.viewport.SetContent("")
}

// ScrollDown and ScrollUp move the viewport.
func (m *DetailModel) ScrollDown() { m.viewport.LineDown(3) }
func (m *DetailModel) ScrollUp()   { m.viewport.LineUp(3) }

// View renders the viewport content.
func (m DetailModel) View() string {
	return m.viewport.View()
}

func (m *DetailModel) renderCard(fd *model.FamilyData, p *model.Person, generation int, lineage []string) string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render(p.Name))
	b.WriteString(" " + RenderGenderBadge(t, p.Gender))
	b.WriteString(" " + RenderGenerationBadge(t, generation))
	b.WriteString("\n")

	if span := p.DisplaySpan(); span != "" {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Subtext).Render(span))
		if years, ok := p.Lifespan(); ok {
			b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Render(fmt.Sprintf("  (%d years)", years)))
		}
		b.WriteString("\n")
	}

	if p.Spouse != nil {
		sp := p.Spouse
		line := GlyphSpouse + " " + sp.Name
		if span := sp.DisplaySpan(); span != "" {
			line += " " + span
		}
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Secondary).Render(line))
		b.WriteString("\n")
	}

	if len(p.Tags) > 0 {
		b.WriteString(RenderTagChips(t, p.Tags))
		b.WriteString("\n")
	}

	if len(p.Children) > 0 {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Subtext).
			Render(fmt.Sprintf("%d children", len(p.Children))))
		b.WriteString("\n")
	}

	if events := relatedEvents(fd, p.ID); len(events) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary).Render("Events"))
		b.WriteString("\n")
		for _, ev := range events {
			line := "• " + ev.Title
			if ev.Date != "" {
				line += " (" + ev.Date + ")"
			}
			b.WriteString(t.Renderer.NewStyle().Foreground(t.Subtext).Render(line))
			b.WriteString("\n")
		}
	}

	if p.Notes != "" {
		b.WriteString("\n")
		b.WriteString(m.renderNotes(p.Notes))
	}

	if len(lineage) > 1 {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).
			Render("Lineage: " + lineageNames(fd, lineage)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderNotes renders the person's markdown notes; on renderer failure the
// raw text shows instead.
func (m *DetailModel) renderNotes(notes string) string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return notes
	}
	out, err := r.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimRight(out, "\n")
}

func relatedEvents(fd *model.FamilyData, personID string) []*model.Event {
	var events []*model.Event
	for i := range fd.Events {
		if fd.Events[i].Involves(personID) {
			events = append(events, &fd.Events[i])
		}
	}
	return events
}

// lineageNames turns the id path into "A → B → C" using display names.
func lineageNames(fd *model.FamilyData, lineage []string) string {
	names := make([]string, 0, len(lineage))
	for _, id := range lineage {
		if p, _, ok := query.FindByID(fd, id); ok {
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, " → ")
}
