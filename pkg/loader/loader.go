// Package loader reads and validates the family.json snapshot. The query
// engine assumes well-formed data (unique ids, strict hierarchy), so all
// validation happens here, once, at load time.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nuwandm/mahagedara/pkg/model"
)

// DefaultDataFile is the file name looked up in the working directory when
// no explicit path is given.
const DefaultDataFile = "family.json"

// LoadFamily reads the family data file from dir (working directory when
// empty).
func LoadFamily(dir string) (*model.FamilyData, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return LoadFamilyFromFile(filepath.Join(dir, DefaultDataFile))
}

// LoadFamilyFromFile reads family data directly from a specific JSON file.
func LoadFamilyFromFile(path string) (*model.FamilyData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no family data found at %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read family data: %w", err)
	}

	var fd model.FamilyData
	if err := json.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Validate(&fd); err != nil {
		return nil, fmt.Errorf("invalid family data in %s: %w", path, err)
	}

	return &fd, nil
}

// Validate checks the invariants the query engine depends on: every person
// and event individually valid, and ids unique across the root couple, all
// descendants, spouse records, and events.
func Validate(fd *model.FamilyData) error {
	if fd.FamilyName == "" {
		return fmt.Errorf("familyName cannot be empty")
	}

	seen := make(map[string]string)
	claim := func(id, what string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("duplicate id %q (%s and %s)", id, prev, what)
		}
		seen[id] = what
		return nil
	}

	var validateTree func(p *model.Person) error
	validateTree = func(p *model.Person) error {
		if err := p.Validate(); err != nil {
			return err
		}
		if err := claim(p.ID, "person"); err != nil {
			return err
		}
		if p.Spouse != nil {
			if err := claim(p.Spouse.ID, "spouse of "+p.ID); err != nil {
				return err
			}
		}
		for i := range p.Children {
			if err := validateTree(&p.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if err := validateTree(&fd.Tree.Husband); err != nil {
		return err
	}
	if err := validateTree(&fd.Tree.Wife); err != nil {
		return err
	}
	if len(fd.Tree.Husband.Children) > 0 || len(fd.Tree.Wife.Children) > 0 {
		return fmt.Errorf("root couple children belong on the shared tree.children sequence")
	}
	for i := range fd.Tree.Children {
		if err := validateTree(&fd.Tree.Children[i]); err != nil {
			return err
		}
	}

	for i := range fd.Events {
		ev := &fd.Events[i]
		if err := ev.Validate(); err != nil {
			return err
		}
		if err := claim(ev.ID, "event"); err != nil {
			return err
		}
		for _, pid := range ev.PersonIDs {
			if what, ok := seen[pid]; !ok || what == "event" {
				return fmt.Errorf("event %s references unknown person %q", ev.ID, pid)
			}
		}
	}

	return nil
}
