package poster

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"
)

// Align is the horizontal alignment of a label relative to its anchor.
type Align int

// Horizontal alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Weight is a CSS-style numeric font weight.
type Weight int

// Font weights used by the layouts.
const (
	WeightNormal    Weight = 400
	WeightMedium    Weight = 500
	WeightSemiBold  Weight = 600
	WeightBold      Weight = 700
	WeightExtraBold Weight = 800
	WeightBlack     Weight = 900
)

// TextLabel is a single line of literal text, vertically centered on
// (X, Y). Size is in points.
type TextLabel struct {
	Text    string
	X, Y    float64
	Size    float64
	Weight  Weight
	Italic  bool
	Color   gg.RGBA
	Opacity float64
	Align   Align
}

func (TextLabel) Layer() Layer { return LayerText }

// Bounds returns the anchor point only; the extent depends on the
// resolved font.
func (t TextLabel) Bounds() Bounds {
	return Bounds{MinX: t.X, MinY: t.Y, MaxX: t.X, MaxY: t.Y}
}

// FontStyle selects the face used for a label.
func (t TextLabel) FontStyle() FontStyle {
	switch {
	case t.Italic:
		return StyleItalic
	case t.Weight >= WeightSemiBold:
		return StyleBold
	default:
		return StyleRegular
	}
}

func (t TextLabel) draw(c *Canvas) error {
	face, err := c.fonts.Face(t.FontStyle(), c.points(t.Size))
	if err != nil {
		return err
	}
	col := withOpacity(t.Color, t.Opacity)
	c.dc.SetFont(face)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawStringAnchored(norm.NFC.String(t.Text), c.x(t.X), c.y(t.Y), t.Align.anchor(), 0.5)
	return nil
}
