package model

import (
	"fmt"
	"time"
)

// Person is one node in the family tree. Children are owned by exactly one
// parent's Children slice; slice order is display order.
type Person struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Gender    Gender   `json:"gender,omitempty"`
	BirthYear *int     `json:"birthYear,omitempty"`
	DeathYear *int     `json:"deathYear,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Spouse    *Spouse  `json:"spouse,omitempty"`
	Children  []Person `json:"children,omitempty"`
}

// Clone creates a deep copy of the person and their whole subtree.
func (p Person) Clone() Person {
	clone := p

	if p.BirthYear != nil {
		v := *p.BirthYear
		clone.BirthYear = &v
	}
	if p.DeathYear != nil {
		v := *p.DeathYear
		clone.DeathYear = &v
	}

	if p.Tags != nil {
		clone.Tags = make([]string, len(p.Tags))
		copy(clone.Tags, p.Tags)
	}

	if p.Spouse != nil {
		v := p.Spouse.Clone()
		clone.Spouse = &v
	}

	if p.Children != nil {
		clone.Children = make([]Person, len(p.Children))
		for i, child := range p.Children {
			clone.Children[i] = child.Clone()
		}
	}

	return clone
}

// Validate checks if the person data is logically valid. It does not
// recurse; the loader walks the tree and validates every node.
func (p *Person) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("person ID cannot be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("person %s: name cannot be empty", p.ID)
	}
	if !p.Gender.IsValid() {
		return fmt.Errorf("person %s: invalid gender: %s", p.ID, p.Gender)
	}
	if p.BirthYear != nil && p.DeathYear != nil && *p.DeathYear < *p.BirthYear {
		return fmt.Errorf("person %s: deathYear (%d) cannot be before birthYear (%d)", p.ID, *p.DeathYear, *p.BirthYear)
	}
	if p.Spouse != nil {
		if err := p.Spouse.Validate(); err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
	}
	return nil
}

// IsDeceased returns true if a death year is recorded.
func (p *Person) IsDeceased() bool {
	return p.DeathYear != nil
}

// Lifespan returns the number of years between birth and death, and whether
// both years are known.
func (p *Person) Lifespan() (int, bool) {
	if p.BirthYear == nil || p.DeathYear == nil {
		return 0, false
	}
	return *p.DeathYear - *p.BirthYear, true
}

// DisplaySpan formats the life years for display: "1945–2010", "b. 1945",
// "d. 2010", or "" when neither year is known.
func (p *Person) DisplaySpan() string {
	switch {
	case p.BirthYear != nil && p.DeathYear != nil:
		return fmt.Sprintf("%d–%d", *p.BirthYear, *p.DeathYear)
	case p.BirthYear != nil:
		return fmt.Sprintf("b. %d", *p.BirthYear)
	case p.DeathYear != nil:
		return fmt.Sprintf("d. %d", *p.DeathYear)
	}
	return ""
}

// Gender is the declared gender of a person. The empty value means
// "unspecified": styled like GenderOther, but it never satisfies a
// specific male/female filter.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid returns true if the gender is a recognized value or unspecified.
func (g Gender) IsValid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Spouse is a Person-shaped record attached to a tree node. Spouses are not
// traversal nodes themselves (no children, never recursed into), but their
// tags count toward the global tag vocabulary.
type Spouse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Gender    Gender   `json:"gender,omitempty"`
	BirthYear *int     `json:"birthYear,omitempty"`
	DeathYear *int     `json:"deathYear,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
}

// Clone creates a deep copy of the spouse record.
func (s Spouse) Clone() Spouse {
	clone := s
	if s.BirthYear != nil {
		v := *s.BirthYear
		clone.BirthYear = &v
	}
	if s.DeathYear != nil {
		v := *s.DeathYear
		clone.DeathYear = &v
	}
	if s.Tags != nil {
		clone.Tags = make([]string, len(s.Tags))
		copy(clone.Tags, s.Tags)
	}
	return clone
}

// Validate checks if the spouse data is logically valid.
func (s *Spouse) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("spouse ID cannot be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("spouse %s: name cannot be empty", s.ID)
	}
	if !s.Gender.IsValid() {
		return fmt.Errorf("spouse %s: invalid gender: %s", s.ID, s.Gender)
	}
	return nil
}

// AsPerson converts the spouse into a childless Person so filter and
// rendering code can treat both shapes uniformly.
func (s *Spouse) AsPerson() Person {
	return Person{
		ID:        s.ID,
		Name:      s.Name,
		Gender:    s.Gender,
		BirthYear: s.BirthYear,
		DeathYear: s.DeathYear,
		Tags:      s.Tags,
		Notes:     s.Notes,
		PhotoURL:  s.PhotoURL,
	}
}

// DisplaySpan formats the spouse's life years like Person.DisplaySpan.
func (s *Spouse) DisplaySpan() string {
	p := s.AsPerson()
	return p.DisplaySpan()
}

// RootCouple is the tree root: two people at generation 0 sharing one
// Children slice (generation 1). "Husband"/"Wife" naming is historical and
// carries no ordering semantics beyond husband-then-wife in lineage paths.
type RootCouple struct {
	Husband  Person   `json:"husband"`
	Wife     Person   `json:"wife"`
	Children []Person `json:"children,omitempty"`
}

// Metadata records when the data file was authored and last touched.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FamilyData is the top-level container parsed from family.json. It is
// loaded once and treated as immutable for the lifetime of the session.
type FamilyData struct {
	FamilyName string     `json:"familyName"`
	Motto      string     `json:"motto,omitempty"`
	Tree       RootCouple `json:"tree"`
	Events     []Event    `json:"events,omitempty"`
	Meta       *Metadata  `json:"meta,omitempty"`
}

// Clone creates a deep copy of the whole family snapshot.
func (fd FamilyData) Clone() FamilyData {
	clone := fd
	clone.Tree.Husband = fd.Tree.Husband.Clone()
	clone.Tree.Wife = fd.Tree.Wife.Clone()
	if fd.Tree.Children != nil {
		clone.Tree.Children = make([]Person, len(fd.Tree.Children))
		for i, child := range fd.Tree.Children {
			clone.Tree.Children[i] = child.Clone()
		}
	}
	if fd.Events != nil {
		clone.Events = make([]Event, len(fd.Events))
		for i, ev := range fd.Events {
			clone.Events[i] = ev.Clone()
		}
	}
	if fd.Meta != nil {
		v := *fd.Meta
		clone.Meta = &v
	}
	return clone
}
