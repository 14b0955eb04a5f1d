package ui

import (
	"strings"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// treeRow is one flattened, renderable line of the tree pane.
type treeRow struct {
	person     *model.Person
	generation int
	selfMatch  bool
	isRoot     bool // member of the root couple
	expandable bool // has visible children
	expanded   bool
}

// buildRows flattens the tree into the visible row list for the current
// filters and expansion state. The root couple always renders; descendants
// render when their subtree is visible, their parent chain is expanded,
// and in original sibling order.
func buildRows(fd *model.FamilyData, f query.Filters, expanded map[string]bool) []treeRow {
	rows := []treeRow{
		rootRow(&fd.Tree.Husband, f),
		rootRow(&fd.Tree.Wife, f),
	}

	var walk func(list []*model.Person, generation int)
	walk = func(list []*model.Person, generation int) {
		for _, p := range list {
			kids := query.VisibleChildren(p, generation, f)
			row := treeRow{
				person:     p,
				generation: generation,
				selfMatch:  query.Matches(p, generation, f),
				expandable: len(kids) > 0,
				expanded:   expanded[p.ID],
			}
			rows = append(rows, row)
			if row.expandable && row.expanded {
				walk(kids, generation+1)
			}
		}
	}
	walk(query.VisibleRootChildren(&fd.Tree, f), 1)
	return rows
}

func rootRow(p *model.Person, f query.Filters) treeRow {
	return treeRow{
		person:    p,
		selfMatch: query.Matches(p, 0, f),
		isRoot:    true,
	}
}

// treePane renders the flattened rows with cursor, lineage highlighting,
// and dimming for kept-for-context nodes.
type treePane struct {
	theme  Theme
	width  int
	height int
	scroll int
}

func newTreePane(theme Theme) treePane {
	return treePane{theme: theme}
}

func (tp *treePane) SetSize(width, height int) {
	tp.width = width
	tp.height = height
}

// ensureVisible scrolls so the cursor row stays on screen.
func (tp *treePane) ensureVisible(cursor, total int) {
	if tp.height <= 0 {
		return
	}
	if cursor < tp.scroll {
		tp.scroll = cursor
	}
	if cursor >= tp.scroll+tp.height {
		tp.scroll = cursor - tp.height + 1
	}
	if tp.scroll > total-1 {
		tp.scroll = total - 1
	}
	if tp.scroll < 0 {
		tp.scroll = 0
	}
}

// View renders the rows; lineage is the set of ids on the highlighted
// descent path.
func (tp *treePane) View(rows []treeRow, cursor int, lineage map[string]bool) string {
	tp.ensureVisible(cursor, len(rows))

	var b strings.Builder
	end := len(rows)
	if tp.height > 0 && tp.scroll+tp.height < end {
		end = tp.scroll + tp.height
	}
	for i := tp.scroll; i < end; i++ {
		b.WriteString(tp.renderRow(rows[i], i == cursor, lineage[rows[i].person.ID]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(rows) == 2 {
		// only the root couple: everything below is filtered out
		b.WriteString("\n\n")
		b.WriteString(tp.theme.Renderer.NewStyle().
			Foreground(tp.theme.Muted).
			Italic(true).
			Render("  no one matches the current filters"))
	}
	return b.String()
}

func (tp *treePane) renderRow(row treeRow, selected, onLineage bool) string {
	t := tp.theme

	indent := strings.Repeat("  ", row.generation)
	glyph := GlyphLeaf
	if row.expandable {
		glyph = GlyphCollapsed
		if row.expanded {
			glyph = GlyphExpanded
		}
	}
	if row.isRoot {
		glyph = "┳"
	}

	name := row.person.Name
	if row.person.IsDeceased() {
		name += " " + GlyphDeceased
	}

	parts := []string{
		indent + glyph,
		RenderGenderBadge(t, row.person.Gender),
		name,
	}
	if span := row.person.DisplaySpan(); span != "" {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Subtext).Render(span))
	}
	if row.person.Spouse != nil {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Secondary).
			Render(GlyphSpouse+" "+row.person.Spouse.Name))
	}
	if chips := RenderTagChips(t, row.person.Tags); chips != "" {
		parts = append(parts, chips)
	}

	line := TruncateString(strings.Join(parts, " "), tp.width)

	style := t.Renderer.NewStyle()
	switch {
	case selected:
		style = style.Foreground(t.Primary).Bold(true)
	case !row.selfMatch:
		// visible only because a descendant matches: de-emphasize
		style = style.Foreground(t.Muted).Faint(true)
	}
	if onLineage && !selected {
		style = style.Foreground(t.Highlight)
	}
	return style.Render(line)
}
