package query

import (
	"sort"
	"strings"

	"github.com/nuwandm/mahagedara/pkg/model"
)

// Walk visits every traversal node (root couple, then all descendants) in
// pre-order, left to right, passing each node's derived generation level.
// Spouses are not traversal nodes and are not visited.
func Walk(fd *model.FamilyData, visit func(p *model.Person, generation int)) {
	visit(&fd.Tree.Husband, 0)
	visit(&fd.Tree.Wife, 0)
	walkChildren(fd.Tree.Children, 1, visit)
}

func walkChildren(children []model.Person, generation int, visit func(p *model.Person, generation int)) {
	for i := range children {
		visit(&children[i], generation)
		walkChildren(children[i].Children, generation+1, visit)
	}
}

// FindByID returns the traversal node with the given id and its generation
// level. First match wins, consistent with ResolveLineage. Spouse records
// are not searched.
func FindByID(fd *model.FamilyData, id string) (*model.Person, int, bool) {
	var (
		found *model.Person
		gen   int
	)
	Walk(fd, func(p *model.Person, generation int) {
		if found == nil && p.ID == id {
			found = p
			gen = generation
		}
	})
	if found == nil {
		return nil, 0, false
	}
	return found, gen, true
}

// MaxGeneration returns the deepest generation level present in the tree.
func MaxGeneration(fd *model.FamilyData) int {
	max := 0
	Walk(fd, func(_ *model.Person, generation int) {
		if generation > max {
			max = generation
		}
	})
	return max
}

// CountPeople returns the number of traversal nodes in the tree.
func CountPeople(fd *model.FamilyData) int {
	n := 0
	Walk(fd, func(*model.Person, int) { n++ })
	return n
}

// TagVocabulary collects every distinct tag in the snapshot, including
// spouse tags. Deduplication is case-insensitive with first-seen casing
// preserved; the result is sorted case-insensitively for stable display.
func TagVocabulary(fd *model.FamilyData) []string {
	seen := make(map[string]string)
	add := func(tags []string) {
		for _, tag := range tags {
			key := norm(tag)
			if _, ok := seen[key]; !ok {
				seen[key] = tag
			}
		}
	}
	Walk(fd, func(p *model.Person, _ int) {
		add(p.Tags)
		if p.Spouse != nil {
			add(p.Spouse.Tags)
		}
	})

	vocab := make([]string, 0, len(seen))
	for _, tag := range seen {
		vocab = append(vocab, tag)
	}
	sort.Slice(vocab, func(i, j int) bool {
		a, b := strings.ToLower(vocab[i]), strings.ToLower(vocab[j])
		if a != b {
			return a < b
		}
		return vocab[i] < vocab[j]
	})
	return vocab
}
