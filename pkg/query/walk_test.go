package query

import (
	"reflect"
	"testing"

	"github.com/nuwandm/mahagedara/pkg/model"
)

func TestWalkOrderAndGenerations(t *testing.T) {
	fd := deepFamily()

	var ids []string
	gens := make(map[string]int)
	Walk(fd, func(p *model.Person, generation int) {
		ids = append(ids, p.ID)
		gens[p.ID] = generation
	})

	want := []string{"h", "w", "dan", "eve"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Expected pre-order %v, got %v", want, ids)
	}
	if gens["h"] != 0 || gens["w"] != 0 {
		t.Error("Root couple must be generation 0")
	}
	if gens["dan"] != 1 || gens["eve"] != 2 {
		t.Errorf("Derived generations wrong: %v", gens)
	}
}

func TestFindByID(t *testing.T) {
	fd := deepFamily()

	p, gen, ok := FindByID(fd, "eve")
	if !ok || p.Name != "Eve" || gen != 2 {
		t.Errorf("FindByID(eve): got %v gen=%d ok=%v", p, gen, ok)
	}

	if _, _, ok := FindByID(fd, "ghost"); ok {
		t.Error("FindByID should report missing ids")
	}
}

func TestMaxGenerationAndCount(t *testing.T) {
	fd := deepFamily()

	if got := MaxGeneration(fd); got != 2 {
		t.Errorf("Expected max generation 2, got %d", got)
	}
	if got := CountPeople(fd); got != 4 {
		t.Errorf("Expected 4 people, got %d", got)
	}
}

func TestTagVocabularyIncludesSpouses(t *testing.T) {
	fd := deepFamily()
	fd.Tree.Children[0].Spouse = &model.Spouse{
		ID: "dan-spouse", Name: "Mira", Tags: []string{"Doctor"},
	}
	fd.Tree.Husband.Tags = []string{"farmer"}

	got := TagVocabulary(fd)
	want := []string{"Doctor", "engineer", "farmer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTagVocabularyCaseInsensitiveDedupe(t *testing.T) {
	fd := smallFamily()
	fd.Tree.Husband.Tags = []string{"Farmer"}
	fd.Tree.Wife.Tags = []string{"farmer"}

	got := TagVocabulary(fd)
	if len(got) != 1 {
		t.Fatalf("Expected 1 tag after case-insensitive dedupe, got %v", got)
	}
	if got[0] != "Farmer" {
		t.Errorf("First-seen casing should be preserved, got %q", got[0])
	}
}
