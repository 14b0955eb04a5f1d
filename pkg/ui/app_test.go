package ui

import (
	"testing"
	"time"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

func intPtr(v int) *int { return &v }

func testFamily() *model.FamilyData {
	return &model.FamilyData{
		FamilyName: "Perera",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "hector", Name: "Hector", Gender: model.GenderMale, BirthYear: intPtr(1920)},
			Wife:    model.Person{ID: "wilma", Name: "Wilma", Gender: model.GenderFemale, BirthYear: intPtr(1924)},
			Children: []model.Person{
				{
					ID: "dan", Name: "Dan", Gender: model.GenderMale,
					Children: []model.Person{
						{ID: "eve", Name: "Eve", Gender: model.GenderFemale, Tags: []string{"engineer"}},
					},
				},
				{ID: "fay", Name: "Fay", Gender: model.GenderFemale},
			},
		},
		Events: []model.Event{
			{ID: "ev1", Title: "Reunion", Date: "1999-07-04", PersonIDs: []string{"dan"}},
		},
	}
}

func allExpanded(fd *model.FamilyData) map[string]bool {
	expanded := make(map[string]bool)
	query.Walk(fd, func(p *model.Person, _ int) {
		if len(p.Children) > 0 {
			expanded[p.ID] = true
		}
	})
	return expanded
}

func rowIDs(rows []treeRow) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.person.ID
	}
	return ids
}

func TestBuildRowsFullyExpanded(t *testing.T) {
	fd := testFamily()
	rows := buildRows(fd, query.NewFilters(), allExpanded(fd))

	want := []string{"hector", "wilma", "dan", "eve", "fay"}
	got := rowIDs(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestBuildRowsRootCoupleAlwaysPresent(t *testing.T) {
	fd := testFamily()
	f := query.NewFilters()
	f.Search = "no such person"

	rows := buildRows(fd, f, allExpanded(fd))
	if len(rows) != 2 {
		t.Fatalf("expected only root couple rows, got %v", rowIDs(rows))
	}
	if !rows[0].isRoot || !rows[1].isRoot {
		t.Error("expected both remaining rows to be root rows")
	}
}

func TestBuildRowsCollapsedHidesDescendants(t *testing.T) {
	fd := testFamily()
	expanded := allExpanded(fd)
	expanded["dan"] = false

	rows := buildRows(fd, query.NewFilters(), expanded)
	for _, row := range rows {
		if row.person.ID == "eve" {
			t.Fatal("collapsed dan should hide eve")
		}
	}

	// dan's row still flags him as expandable
	for _, row := range rows {
		if row.person.ID == "dan" {
			if !row.expandable || row.expanded {
				t.Errorf("dan: expandable=%v expanded=%v, want true/false", row.expandable, row.expanded)
			}
		}
	}
}

func TestBuildRowsKeepsAncestorsOfMatches(t *testing.T) {
	fd := testFamily()
	f := query.NewFilters()
	f.Search = "engineer"

	rows := buildRows(fd, f, allExpanded(fd))
	got := rowIDs(rows)
	want := []string{"hector", "wilma", "dan", "eve"}
	if len(got) != len(want) {
		t.Fatalf("expected rows %v, got %v", want, got)
	}

	for _, row := range rows {
		switch row.person.ID {
		case "dan":
			if row.selfMatch {
				t.Error("dan should be kept for context, not a self match")
			}
		case "eve":
			if !row.selfMatch {
				t.Error("eve should be a self match")
			}
		}
	}
}

func TestNextGenderCycle(t *testing.T) {
	order := []model.Gender{"", model.GenderMale, model.GenderFemale, model.GenderOther, ""}
	for i := 0; i < len(order)-1; i++ {
		if got := nextGender(order[i]); got != order[i+1] {
			t.Errorf("nextGender(%q) = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestNextGenerationCycle(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))

	// max generation in the fixture is 2 (eve)
	seq := []int{query.GenerationAll, 0, 1, 2, query.GenerationAll}
	for i := 0; i < len(seq)-1; i++ {
		if got := m.nextGeneration(seq[i]); got != seq[i+1] {
			t.Errorf("nextGeneration(%d) = %d, want %d", seq[i], got, seq[i+1])
		}
	}
}

func TestNewModelStartsExpanded(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))
	if len(m.rows) != 5 {
		t.Fatalf("expected 5 rows on a fresh model, got %v", rowIDs(m.rows))
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}
	if len(m.lineage) != 1 || m.lineage[0] != "hector" {
		t.Errorf("expected singleton lineage for the root husband, got %v", m.lineage)
	}
}

func TestApplyFiltersKeepsCursorOnSurvivor(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))

	// move onto eve
	for i, row := range m.rows {
		if row.person.ID == "eve" {
			m.cursor = i
		}
	}
	m.refreshSelection()

	m.filters.Search = "eve"
	m.applyFilters()

	row := m.selectedRow()
	if row == nil || row.person.ID != "eve" {
		t.Fatalf("expected cursor to stay on eve, got %v", row)
	}
	wantLineage := []string{"hector", "wilma", "dan", "eve"}
	if len(m.lineage) != len(wantLineage) {
		t.Fatalf("expected lineage %v, got %v", wantLineage, m.lineage)
	}
	for i := range wantLineage {
		if m.lineage[i] != wantLineage[i] {
			t.Errorf("lineage[%d] = %s, want %s", i, m.lineage[i], wantLineage[i])
		}
	}
}

func TestApplyFiltersResetsCursorWhenRowVanishes(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))
	for i, row := range m.rows {
		if row.person.ID == "fay" {
			m.cursor = i
		}
	}
	m.refreshSelection()

	m.filters.Search = "eve"
	m.applyFilters()

	if m.cursor != 0 {
		t.Errorf("expected cursor to reset to 0, got %d", m.cursor)
	}
}

func TestJumpToExpandsAncestors(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))
	m.expanded = make(map[string]bool) // collapse everything
	m.rebuildRows()
	m.cursor = 0

	m.jumpTo("eve")

	row := m.selectedRow()
	if row == nil || row.person.ID != "eve" {
		t.Fatalf("expected cursor on eve after jump, got %v", row)
	}
	if !m.expanded["dan"] {
		t.Error("expected dan expanded so eve's row exists")
	}
}

func TestApplySnapshotDropsStaleExpansion(t *testing.T) {
	m := NewModel(testFamily(), "family.json", NewTheme(""))
	m.expanded["gone"] = true

	m.applySnapshot(testFamily())

	if m.expanded["gone"] {
		t.Error("expected stale expansion entry to be dropped")
	}
	if !m.expanded["dan"] {
		t.Error("expected surviving expansion entry to be kept")
	}
}

func TestTagPickerSelection(t *testing.T) {
	p := NewTagPickerModel([]string{"Engineer", "farmer"}, []string{"engineer"}, NewTheme(""))

	got := p.Selection()
	if len(got) != 1 || got[0] != "Engineer" {
		t.Fatalf("expected active tag matched case-insensitively in vocab order, got %v", got)
	}
}

func TestRelativeYears(t *testing.T) {
	now := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		from time.Time
		want string
	}{
		{time.Date(1999, 7, 4, 0, 0, 0, 0, time.UTC), "27 yrs ago"},
		{time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "this year"},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "1 yr ago"},
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "upcoming"},
	}
	for _, tt := range tests {
		if got := RelativeYears(tt.from, now); got != tt.want {
			t.Errorf("RelativeYears(%v) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestGalleryPersonFilter(t *testing.T) {
	fd := testFamily()
	fd.Events = append(fd.Events, model.Event{ID: "ev2", Title: "Graduation", PersonIDs: []string{"eve"}})
	m := NewModel(fd, "family.json", NewTheme(""))

	// select dan, then narrow the gallery to his events
	for i, row := range m.rows {
		if row.person.ID == "dan" {
			m.cursor = i
		}
	}
	m.refreshSelection()
	m.galleryPerson = true
	m.refreshGallery()

	items := m.gallery.Items()
	if len(items) != 1 {
		t.Fatalf("expected only dan's events, got %d items", len(items))
	}
	if items[0].(EventItem).Event.Title != "Reunion" {
		t.Errorf("expected Reunion, got %s", items[0].(EventItem).Event.Title)
	}

	m.galleryPerson = false
	m.refreshGallery()
	if len(m.gallery.Items()) != 2 {
		t.Errorf("expected full gallery after clearing the filter, got %d", len(m.gallery.Items()))
	}
}

func TestEventItemsSortedByDate(t *testing.T) {
	fd := testFamily()
	fd.Events = []model.Event{
		{ID: "e1", Title: "Undated"},
		{ID: "e2", Title: "Later", Date: "2001-06-01"},
		{ID: "e3", Title: "Earlier", Date: "1999-01-15"},
	}

	items := eventItems(fd)
	want := []string{"Earlier", "Later", "Undated"}
	for i, title := range want {
		item, ok := items[i].(EventItem)
		if !ok {
			t.Fatalf("expected EventItem, got %T", items[i])
		}
		if item.Event.Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, item.Event.Title)
		}
	}
}
