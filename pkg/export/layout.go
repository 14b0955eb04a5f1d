// Package export renders a family snapshot into a static site bundle:
// index.html, tree.svg, tree.png, and a copy of the data file. The same
// filter state the TUI uses drives what gets rendered; non-matching
// ancestors kept for context render dimmed, exactly as on screen.
package export

import (
	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// Geometry constants shared by the SVG and PNG renderers (pixels).
const (
	NodeWidth    = 150
	NodeHeight   = 52
	SpouseWidth  = 120
	SpouseGap    = 8
	SiblingGap   = 24
	RowHeight    = 110
	CanvasMargin = 40
)

// LayoutNode is one positioned box in the rendered tree.
type LayoutNode struct {
	Person     *model.Person
	Generation int
	X, Y       float64 // center of the box
	SelfMatch  bool
	Children   []*LayoutNode
}

// HasSpouse reports whether a spouse box hangs off this node.
func (n *LayoutNode) HasSpouse() bool {
	return n.Person.Spouse != nil
}

// Layout is the positioned tree for one snapshot + filter state.
type Layout struct {
	Husband  *LayoutNode
	Wife     *LayoutNode
	TopLevel []*LayoutNode // visible generation-1 nodes
	Width    float64
	Height   float64
}

// Walk visits every positioned node including the root couple.
func (l *Layout) Walk(visit func(n *LayoutNode)) {
	visit(l.Husband)
	visit(l.Wife)
	var rec func(n *LayoutNode)
	rec = func(n *LayoutNode) {
		visit(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	for _, n := range l.TopLevel {
		rec(n)
	}
}

// slotWidth is the horizontal space one node claims, spouse box included.
func slotWidth(p *model.Person) float64 {
	w := float64(NodeWidth)
	if p.Spouse != nil {
		w += SpouseGap + SpouseWidth
	}
	return w + SiblingGap
}

// subtreeWidth is the horizontal extent of a visible subtree: the wider of
// the node's own slot and the sum of its visible children's widths.
func subtreeWidth(p *model.Person, gen int, f query.Filters) float64 {
	own := slotWidth(p)
	var kids float64
	for _, c := range query.VisibleChildren(p, gen, f) {
		kids += subtreeWidth(c, gen+1, f)
	}
	if kids > own {
		return kids
	}
	return own
}

// BuildLayout positions every visible node for the given filter state.
// Children center under their parent; the root couple centers over the
// visible top-level children.
func BuildLayout(fd *model.FamilyData, f query.Filters) *Layout {
	topLevel := query.VisibleRootChildren(&fd.Tree, f)

	var total float64
	for _, p := range topLevel {
		total += subtreeWidth(p, 1, f)
	}
	coupleWidth := slotWidth(&fd.Tree.Husband) + slotWidth(&fd.Tree.Wife)
	if coupleWidth > total {
		total = coupleWidth
	}

	l := &Layout{
		Width: total + 2*CanvasMargin,
	}

	maxGen := 0
	var place func(p *model.Person, gen int, left float64) *LayoutNode
	place = func(p *model.Person, gen int, left float64) *LayoutNode {
		if gen > maxGen {
			maxGen = gen
		}
		width := subtreeWidth(p, gen, f)
		n := &LayoutNode{
			Person:     p,
			Generation: gen,
			X:          left + width/2,
			Y:          CanvasMargin + float64(gen)*RowHeight + NodeHeight/2,
			SelfMatch:  query.Matches(p, gen, f),
		}
		childLeft := left
		kids := query.VisibleChildren(p, gen, f)
		var kidsWidth float64
		for _, c := range kids {
			kidsWidth += subtreeWidth(c, gen+1, f)
		}
		// children block centers under the parent slot
		childLeft += (width - kidsWidth) / 2
		for _, c := range kids {
			cw := subtreeWidth(c, gen+1, f)
			n.Children = append(n.Children, place(c, gen+1, childLeft))
			childLeft += cw
		}
		return n
	}

	var topWidth float64
	for _, p := range topLevel {
		topWidth += subtreeWidth(p, 1, f)
	}
	left := CanvasMargin + (total-topWidth)/2
	for _, p := range topLevel {
		w := subtreeWidth(p, 1, f)
		l.TopLevel = append(l.TopLevel, place(p, 1, left))
		left += w
	}

	// root couple centered over everything
	center := l.Width / 2
	rootY := float64(CanvasMargin) + NodeHeight/2
	l.Husband = &LayoutNode{
		Person:    &fd.Tree.Husband,
		X:         center - float64(NodeWidth+SiblingGap)/2,
		Y:         rootY,
		SelfMatch: query.Matches(&fd.Tree.Husband, 0, f),
	}
	l.Wife = &LayoutNode{
		Person:    &fd.Tree.Wife,
		X:         center + float64(NodeWidth+SiblingGap)/2,
		Y:         rootY,
		SelfMatch: query.Matches(&fd.Tree.Wife, 0, f),
	}

	l.Height = CanvasMargin*2 + float64(maxGen)*RowHeight + NodeHeight
	if len(topLevel) == 0 {
		l.Height = CanvasMargin*2 + NodeHeight
	}
	return l
}
