package export

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// WritePNG renders the positioned tree as a raster image. scale multiplies
// the base pixel geometry (2.0 gives a crisp export).
func WritePNG(w io.Writer, fd *model.FamilyData, f query.Filters, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	l := BuildLayout(fd, f)

	dc := gg.NewContext(int(l.Width*scale), int(l.Height*scale))
	dc.Scale(scale, scale)

	face, err := textFace(12)
	if err != nil {
		return err
	}
	smallFace, err := textFace(10)
	if err != nil {
		return err
	}

	setColor(dc, svgBackground, 1)
	dc.Clear()

	// connectors
	setColor(dc, svgConnector, 1)
	dc.SetLineWidth(1.5)
	coupleMidX := (l.Husband.X + l.Wife.X) / 2
	dc.DrawLine(l.Husband.X, l.Husband.Y, l.Wife.X, l.Wife.Y)
	dc.Stroke()
	for _, child := range l.TopLevel {
		strokeConnector(dc, coupleMidX, l.Husband.Y+NodeHeight/2, child.X, child.Y-NodeHeight/2)
	}
	l.Walk(func(n *LayoutNode) {
		for _, child := range n.Children {
			strokeConnector(dc, n.X, n.Y+NodeHeight/2, child.X, child.Y-NodeHeight/2)
		}
	})

	// boxes
	l.Walk(func(n *LayoutNode) {
		alpha := 1.0
		if !n.SelfMatch {
			alpha = dimOpacity
		}

		x := n.X - NodeWidth/2
		y := n.Y - NodeHeight/2
		setColor(dc, svgBoxFill, alpha)
		dc.DrawRoundedRectangle(x, y, NodeWidth, NodeHeight, 6)
		dc.FillPreserve()
		setColor(dc, svgBoxStroke, alpha)
		dc.SetLineWidth(1.5)
		dc.Stroke()

		dc.SetFontFace(face)
		setColor(dc, svgText, alpha)
		dc.DrawStringAnchored(n.Person.Name, n.X, y+18, 0.5, 0.5)
		if span := n.Person.DisplaySpan(); span != "" {
			dc.SetFontFace(smallFace)
			setColor(dc, svgSubtext, alpha)
			dc.DrawStringAnchored(span, n.X, y+36, 0.5, 0.5)
		}

		if n.HasSpouse() {
			sx := x + NodeWidth + SpouseGap
			setColor(dc, svgConnector, alpha)
			dc.DrawLine(x+NodeWidth, n.Y, sx, n.Y)
			dc.Stroke()

			setColor(dc, svgSpouseFill, alpha)
			dc.DrawRoundedRectangle(sx, y, SpouseWidth, NodeHeight, 6)
			dc.Fill()

			dc.SetFontFace(face)
			setColor(dc, svgText, alpha)
			dc.DrawStringAnchored(n.Person.Spouse.Name, sx+SpouseWidth/2, y+18, 0.5, 0.5)
			if span := n.Person.Spouse.DisplaySpan(); span != "" {
				dc.SetFontFace(smallFace)
				setColor(dc, svgSubtext, alpha)
				dc.DrawStringAnchored(span, sx+SpouseWidth/2, y+36, 0.5, 0.5)
			}
		}
	})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func strokeConnector(dc *gg.Context, x1, y1, x2, y2 float64) {
	midY := (y1 + y2) / 2
	setColor(dc, svgConnector, 1)
	dc.SetLineWidth(1.5)
	dc.MoveTo(x1, y1)
	dc.LineTo(x1, midY)
	dc.LineTo(x2, midY)
	dc.LineTo(x2, y2)
	dc.Stroke()
}

// setColor sets a "#RRGGBB" color with the given alpha.
func setColor(dc *gg.Context, hex string, alpha float64) {
	var r, g, b int
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	dc.SetRGBA(float64(r)/255, float64(g)/255, float64(b)/255, alpha)
}

func textFace(points float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: points, DPI: 96, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return face, nil
}
