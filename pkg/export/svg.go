package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// Colors for the exported diagrams, matching the TUI palette.
const (
	svgBackground = "#282A36"
	svgBoxFill    = "#363949"
	svgBoxStroke  = "#BD93F9"
	svgSpouseFill = "#2A2A3D"
	svgConnector  = "#6272A4"
	svgText       = "#F8F8F2"
	svgSubtext    = "#BFBFBF"
	dimOpacity    = 0.35
)

// WriteSVG renders the positioned tree as an SVG document.
func WriteSVG(w io.Writer, fd *model.FamilyData, f query.Filters) {
	l := BuildLayout(fd, f)
	canvas := svg.New(w)
	canvas.Start(int(l.Width), int(l.Height))
	canvas.Rect(0, 0, int(l.Width), int(l.Height), "fill:"+svgBackground)

	title := fd.FamilyName
	if fd.Motto != "" {
		title += " — " + fd.Motto
	}
	canvas.Text(int(l.Width)/2, 24, title,
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:14px;fill:%s", svgText))

	// connectors first so boxes draw over them
	coupleMidX := int((l.Husband.X + l.Wife.X) / 2)
	coupleY := int(l.Husband.Y)
	canvas.Line(int(l.Husband.X), coupleY, int(l.Wife.X), coupleY,
		"stroke:"+svgConnector+";stroke-width:2")
	for _, child := range l.TopLevel {
		drawConnector(canvas, coupleMidX, coupleY+NodeHeight/2, int(child.X), int(child.Y)-NodeHeight/2)
	}
	l.Walk(func(n *LayoutNode) {
		for _, child := range n.Children {
			drawConnector(canvas, int(n.X), int(n.Y)+NodeHeight/2, int(child.X), int(child.Y)-NodeHeight/2)
		}
	})

	l.Walk(func(n *LayoutNode) {
		drawPersonBox(canvas, n)
	})

	canvas.End()
}

func drawConnector(canvas *svg.SVG, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	style := "stroke:" + svgConnector + ";stroke-width:1.5;fill:none"
	canvas.Polyline(
		[]int{x1, x1, x2, x2},
		[]int{y1, midY, midY, y2},
		style,
	)
}

func drawPersonBox(canvas *svg.SVG, n *LayoutNode) {
	opacity := 1.0
	if !n.SelfMatch {
		opacity = dimOpacity
	}
	canvas.Group(fmt.Sprintf(`opacity="%.2f"`, opacity))

	x := int(n.X) - NodeWidth/2
	y := int(n.Y) - NodeHeight/2
	canvas.Roundrect(x, y, NodeWidth, NodeHeight, 6, 6,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.5", svgBoxFill, svgBoxStroke))

	name := n.Person.Name
	canvas.Text(int(n.X), y+20, name,
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:12px;fill:%s", svgText))
	if span := n.Person.DisplaySpan(); span != "" {
		canvas.Text(int(n.X), y+38, span,
			fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:10px;fill:%s", svgSubtext))
	}

	if n.HasSpouse() {
		sx := x + NodeWidth + SpouseGap
		canvas.Line(x+NodeWidth, int(n.Y), sx, int(n.Y), "stroke:"+svgConnector+";stroke-width:2")
		canvas.Roundrect(sx, y, SpouseWidth, NodeHeight, 6, 6,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", svgSpouseFill, svgConnector))
		canvas.Text(sx+SpouseWidth/2, y+20, n.Person.Spouse.Name,
			fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:11px;fill:%s", svgText))
		if span := n.Person.Spouse.DisplaySpan(); span != "" {
			canvas.Text(sx+SpouseWidth/2, y+38, span,
				fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:10px;fill:%s", svgSubtext))
		}
	}

	canvas.Gend()
}
