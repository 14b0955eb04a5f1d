// Package query is the tree query engine: pure functions that decide, for
// an immutable family snapshot and a filter state, which nodes are visible,
// which nodes directly match, and what the ancestor lineage of a node is.
// The presentation layer owns all mutable state (filter values, expanded
// ids) and passes it in on every call; nothing here mutates the tree.
package query

import (
	"strings"

	"github.com/nuwandm/mahagedara/pkg/model"
)

// GenerationAll disables the generation filter.
const GenerationAll = -1

// Filters is a snapshot of the active filter state. The zero value matches
// everything except Generation, which must be GenerationAll to be neutral;
// use NewFilters for a fully neutral value.
type Filters struct {
	// Search matches case-insensitively as a substring against a person's
	// name and each of their tags. Empty disables the clause.
	Search string

	// Gender must equal the person's declared gender exactly. Empty means
	// "all". An unspecified gender never satisfies a specific filter.
	Gender model.Gender

	// Generation must equal the node's derived generation level exactly
	// (root couple = 0). GenerationAll disables the clause.
	Generation int

	// Tags is OR-semantics: a person matches when at least one selected
	// tag appears in their own tags, case-insensitively. Empty disables
	// the clause.
	Tags []string
}

// NewFilters returns the neutral filter state under which every node
// matches.
func NewFilters() Filters {
	return Filters{Generation: GenerationAll}
}

// IsNeutral returns true when no filter clause is active.
func (f Filters) IsNeutral() bool {
	return f.Search == "" && f.Gender == "" && f.Generation == GenerationAll && len(f.Tags) == 0
}

// norm is the single normalization applied before every string comparison.
// Plain Unicode lowercasing; locale-specific case folding is a known
// limitation.
func norm(s string) string {
	return strings.ToLower(s)
}

// Matches reports whether the person, considered in isolation at the given
// generation level, satisfies every active filter clause. Spouses are
// matched through the same function via Spouse.AsPerson.
func Matches(p *model.Person, generation int, f Filters) bool {
	if !matchesSearch(p, f.Search) {
		return false
	}
	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}
	if f.Generation != GenerationAll && generation != f.Generation {
		return false
	}
	return matchesTags(p.Tags, f.Tags)
}

func matchesSearch(p *model.Person, search string) bool {
	if search == "" {
		return true
	}
	q := norm(search)
	if strings.Contains(norm(p.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(norm(tag), q) {
			return true
		}
	}
	return false
}

func matchesTags(own, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		w := norm(want)
		for _, tag := range own {
			if norm(tag) == w {
				return true
			}
		}
	}
	return false
}
