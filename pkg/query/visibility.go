package query

import "github.com/nuwandm/mahagedara/pkg/model"

// Decision is the per-node output consumed by renderers: whether to render
// the node at all, and whether to render it emphasized (a direct match) or
// dimmed (kept only so a matching descendant stays reachable).
type Decision struct {
	Visible   bool
	SelfMatch bool
}

// Evaluate computes the render decision for one node at the given
// generation level.
func Evaluate(p *model.Person, generation int, f Filters) Decision {
	self := Matches(p, generation, f)
	return Decision{
		Visible:   self || hasMatchingDescendant(p.Children, generation+1, f),
		SelfMatch: self,
	}
}

// IsSubtreeVisible reports whether the node should be rendered: true when
// the node itself matches, or when any descendant at any depth matches the
// filters directly. Ancestors of a match stay visible so the tree remains
// connected.
func IsSubtreeVisible(p *model.Person, generation int, f Filters) bool {
	if Matches(p, generation, f) {
		return true
	}
	return hasMatchingDescendant(p.Children, generation+1, f)
}

func hasMatchingDescendant(children []model.Person, generation int, f Filters) bool {
	for i := range children {
		if Matches(&children[i], generation, f) {
			return true
		}
		if hasMatchingDescendant(children[i].Children, generation+1, f) {
			return true
		}
	}
	return false
}

// VisibleChildren returns pointers to the children whose own subtree is
// visible, preserving the original order. generation is the parent's level;
// children are evaluated at generation+1.
func VisibleChildren(p *model.Person, generation int, f Filters) []*model.Person {
	return visibleAmong(p.Children, generation+1, f)
}

// VisibleRootChildren filters the root couple's shared children sequence
// (generation 1), preserving order.
func VisibleRootChildren(root *model.RootCouple, f Filters) []*model.Person {
	return visibleAmong(root.Children, 1, f)
}

func visibleAmong(children []model.Person, generation int, f Filters) []*model.Person {
	var visible []*model.Person
	for i := range children {
		if IsSubtreeVisible(&children[i], generation, f) {
			visible = append(visible, &children[i])
		}
	}
	return visible
}
