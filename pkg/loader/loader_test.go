package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nuwandm/mahagedara/pkg/model"
)

const validJSON = `{
  "familyName": "Perera",
  "motto": "Roots and branches",
  "tree": {
    "husband": {"id": "bob", "name": "Bob", "gender": "male", "birthYear": 1940},
    "wife": {"id": "alice", "name": "Alice", "gender": "female"},
    "children": [
      {
        "id": "carol",
        "name": "Carol",
        "gender": "female",
        "tags": ["Nurse"],
        "spouse": {"id": "sam", "name": "Sam"},
        "children": [
          {"id": "eve", "name": "Eve", "tags": ["engineer"]}
        ]
      }
    ]
  },
  "events": [
    {"id": "ev-1", "title": "Family reunion", "date": "1998-04-12", "people": ["carol", "eve"]}
  ]
}`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultDataFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test data: %v", err)
	}
	return path
}

func TestLoadFamilyFromFile(t *testing.T) {
	path := writeDataFile(t, validJSON)

	fd, err := LoadFamilyFromFile(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if fd.FamilyName != "Perera" {
		t.Errorf("Expected family name Perera, got %s", fd.FamilyName)
	}
	if fd.Tree.Husband.ID != "bob" || fd.Tree.Wife.ID != "alice" {
		t.Error("Root couple not parsed")
	}
	if len(fd.Tree.Children) != 1 || fd.Tree.Children[0].ID != "carol" {
		t.Fatal("Root children not parsed")
	}
	carol := fd.Tree.Children[0]
	if carol.Spouse == nil || carol.Spouse.ID != "sam" {
		t.Error("Spouse record not parsed")
	}
	if len(carol.Children) != 1 || carol.Children[0].ID != "eve" {
		t.Error("Grandchild not parsed")
	}
	if len(fd.Events) != 1 || fd.Events[0].Title != "Family reunion" {
		t.Error("Events not parsed")
	}
}

func TestLoadFamilyFromDirectory(t *testing.T) {
	path := writeDataFile(t, validJSON)

	fd, err := LoadFamily(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Expected directory load to succeed, got %v", err)
	}
	if fd.FamilyName != "Perera" {
		t.Errorf("Expected family name Perera, got %s", fd.FamilyName)
	}
}

func TestLoadFamilyMissingFile(t *testing.T) {
	_, err := LoadFamilyFromFile(filepath.Join(t.TempDir(), "family.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "no family data found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadFamilyMalformedJSON(t *testing.T) {
	path := writeDataFile(t, `{"familyName": "Broken"`)

	if _, err := LoadFamilyFromFile(path); err == nil {
		t.Fatal("Expected parse error for malformed JSON")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	fd := &model.FamilyData{
		FamilyName: "Dup",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H"},
			Wife:    model.Person{ID: "w", Name: "W"},
			Children: []model.Person{
				{ID: "same", Name: "First"},
				{ID: "same", Name: "Second"},
			},
		},
	}

	err := Validate(fd)
	if err == nil {
		t.Fatal("Expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateRejectsSpouseIDCollision(t *testing.T) {
	fd := &model.FamilyData{
		FamilyName: "Dup",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H"},
			Wife:    model.Person{ID: "w", Name: "W"},
			Children: []model.Person{
				{ID: "c", Name: "C", Spouse: &model.Spouse{ID: "h", Name: "Clash"}},
			},
		},
	}

	if err := Validate(fd); err == nil {
		t.Fatal("Spouse ids share the global id space; expected error")
	}
}

func TestValidateRejectsUnknownEventPerson(t *testing.T) {
	fd := &model.FamilyData{
		FamilyName: "F",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H"},
			Wife:    model.Person{ID: "w", Name: "W"},
		},
		Events: []model.Event{
			{ID: "ev", Title: "Party", PersonIDs: []string{"ghost"}},
		},
	}

	err := Validate(fd)
	if err == nil {
		t.Fatal("Expected unknown person reference error")
	}
	if !strings.Contains(err.Error(), "unknown person") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateRejectsRootMemberOwnChildren(t *testing.T) {
	fd := &model.FamilyData{
		FamilyName: "F",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H", Children: []model.Person{{ID: "x", Name: "X"}}},
			Wife:    model.Person{ID: "w", Name: "W"},
		},
	}

	if err := Validate(fd); err == nil {
		t.Fatal("Root couple members must not carry their own children slices")
	}
}

func TestValidateRejectsBadGender(t *testing.T) {
	fd := &model.FamilyData{
		FamilyName: "F",
		Tree: model.RootCouple{
			Husband: model.Person{ID: "h", Name: "H", Gender: "unknown"},
			Wife:    model.Person{ID: "w", Name: "W"},
		},
	}

	if err := Validate(fd); err == nil {
		t.Fatal("Expected invalid gender error")
	}
}
