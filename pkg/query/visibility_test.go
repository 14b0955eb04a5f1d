package query

import (
	"testing"

	"github.com/nuwandm/mahagedara/pkg/model"
)

func TestLeafVisibilityEqualsMatch(t *testing.T) {
	leaf := model.Person{ID: "carol", Name: "Carol"}

	f := NewFilters()
	f.Search = "carol"
	if IsSubtreeVisible(&leaf, 1, f) != Matches(&leaf, 1, f) {
		t.Error("For a leaf, subtree visibility must equal self-match")
	}

	f.Search = "nobody"
	if IsSubtreeVisible(&leaf, 1, f) != Matches(&leaf, 1, f) {
		t.Error("For a leaf, subtree visibility must equal self-match (negative case)")
	}
}

func TestAncestorKeptForMatchingDescendant(t *testing.T) {
	fd := deepFamily()
	dan := &fd.Tree.Children[0]

	f := NewFilters()
	f.Tags = []string{"engineer"}

	if Matches(dan, 1, f) {
		t.Fatal("Dan should not match the engineer tag himself")
	}
	if !IsSubtreeVisible(dan, 1, f) {
		t.Error("Dan must stay visible because Eve matches below him")
	}

	d := Evaluate(dan, 1, f)
	if !d.Visible || d.SelfMatch {
		t.Errorf("Dan should render dimmed: got %+v", d)
	}

	eve := &dan.Children[0]
	de := Evaluate(eve, 2, f)
	if !de.Visible || !de.SelfMatch {
		t.Errorf("Eve should render emphasized: got %+v", de)
	}
}

func TestAncestorKeptTransitively(t *testing.T) {
	// great-grandchild match must pull in every intermediate level
	fd := &model.FamilyData{
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H"},
			Wife:    model.Person{ID: "w", Name: "W"},
			Children: []model.Person{
				{ID: "g1", Name: "GenOne", Children: []model.Person{
					{ID: "g2", Name: "GenTwo", Children: []model.Person{
						{ID: "g3", Name: "Target"},
					}},
				}},
			},
		},
	}

	f := NewFilters()
	f.Search = "target"

	if !IsSubtreeVisible(&fd.Tree.Children[0], 1, f) {
		t.Error("A match at any depth must keep every ancestor visible")
	}
	if Matches(&fd.Tree.Children[0], 1, f) {
		t.Error("GenOne must not itself match")
	}
}

func TestInvisibleSubtreeExcluded(t *testing.T) {
	fd := smallFamily()

	f := NewFilters()
	f.Search = "nobody"

	if vis := VisibleRootChildren(&fd.Tree, f); len(vis) != 0 {
		t.Errorf("Expected no visible root children, got %d", len(vis))
	}
}

func TestVisibleChildrenPreserveOrder(t *testing.T) {
	parent := model.Person{
		ID:   "p",
		Name: "Parent",
		Children: []model.Person{
			{ID: "a", Name: "Amal", Tags: []string{"keep"}},
			{ID: "b", Name: "Bimal"},
			{ID: "c", Name: "Chamal", Tags: []string{"keep"}},
			{ID: "d", Name: "Dilan", Tags: []string{"keep"}},
		},
	}

	f := NewFilters()
	f.Tags = []string{"keep"}

	vis := VisibleChildren(&parent, 1, f)
	want := []string{"a", "c", "d"}
	if len(vis) != len(want) {
		t.Fatalf("Expected %d visible children, got %d", len(want), len(vis))
	}
	for i, id := range want {
		if vis[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, vis[i].ID)
		}
	}
}

func TestVisibleChildrenReferenceSourceNodes(t *testing.T) {
	fd := deepFamily()

	vis := VisibleRootChildren(&fd.Tree, NewFilters())
	if len(vis) != 1 {
		t.Fatalf("Expected 1 visible root child, got %d", len(vis))
	}
	if vis[0] != &fd.Tree.Children[0] {
		t.Error("VisibleChildren must return pointers into the source tree, not copies")
	}
}

func TestGenerationFilterKeepsAncestorChain(t *testing.T) {
	fd := deepFamily()

	f := NewFilters()
	f.Generation = 2 // only Eve's level

	dan := &fd.Tree.Children[0]
	if Matches(dan, 1, f) {
		t.Fatal("Dan is generation 1 and must not match a generation-2 filter")
	}
	if !IsSubtreeVisible(dan, 1, f) {
		t.Error("Dan must stay visible: Eve matches at generation 2")
	}
}
