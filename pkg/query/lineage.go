package query

import "github.com/nuwandm/mahagedara/pkg/model"

// ResolveLineage computes the ordered chain of ids from the tree root down
// to targetID, used to highlight a line of descent.
//
// Root-couple members are their own lineage root: the result is just their
// id. For any other target the path starts with both root ids (husband then
// wife) followed by the first root-to-target path found by a pre-order,
// left-to-right backtracking search. Under duplicate ids (an invariant
// violation the loader rejects) the first match wins.
//
// An unknown target yields an empty path, not an error: "nothing to
// highlight" is a valid outcome.
func ResolveLineage(fd *model.FamilyData, targetID string) []string {
	if targetID == "" {
		return nil
	}
	if targetID == fd.Tree.Husband.ID {
		return []string{fd.Tree.Husband.ID}
	}
	if targetID == fd.Tree.Wife.ID {
		return []string{fd.Tree.Wife.ID}
	}

	path := []string{fd.Tree.Husband.ID, fd.Tree.Wife.ID}
	for i := range fd.Tree.Children {
		if found, ok := descend(&fd.Tree.Children[i], targetID, path); ok {
			return found
		}
	}
	return nil
}

// descend appends the node's id to the accumulated path, returning it when
// the target is found here or below. On failure the appended id is
// discarded (classic backtracking), so each sibling starts from the same
// prefix.
func descend(p *model.Person, targetID string, path []string) ([]string, bool) {
	path = append(path, p.ID)
	if p.ID == targetID {
		return path, true
	}
	for i := range p.Children {
		if found, ok := descend(&p.Children[i], targetID, path); ok {
			return found, true
		}
	}
	return nil, false
}
