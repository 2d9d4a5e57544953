package poster

import (
	"math"

	"github.com/gogpu/gg"
)

// Layer orders drawables at export time. Lower layers are painted first;
// inside a layer the order of Canvas.Add decides stacking.
type Layer int

// Layers used by the poster canvas.
const (
	LayerImage Layer = 0
	LayerShape Layer = 1
	LayerText  Layer = 3
)

// Point is a position in normalized page coordinates.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned box in normalized page coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// UnitSquare is the visible page area.
var UnitSquare = Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}

// Within reports whether b lies inside o, allowing eps of slack on each side.
func (b Bounds) Within(o Bounds, eps float64) bool {
	return b.MinX >= o.MinX-eps && b.MinY >= o.MinY-eps &&
		b.MaxX <= o.MaxX+eps && b.MaxY <= o.MaxY+eps
}

// Drawable is anything that can be placed on a Canvas.
type Drawable interface {
	Layer() Layer
	Bounds() Bounds
	draw(c *Canvas) error
}

// Style is the paint shared by all shapes.
// Edge is only stroked when EdgeWidth (in points) is positive.
// Opacity applies to both fill and edge; zero means opaque.
type Style struct {
	Fill      gg.RGBA
	Edge      gg.RGBA
	EdgeWidth float64
	Opacity   float64
}

func (s Style) paint(c *Canvas) error {
	dc := c.dc
	dc.SetFillBrush(gg.Solid(withOpacity(s.Fill, s.Opacity)))
	if s.EdgeWidth <= 0 {
		return dc.Fill()
	}
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetStrokeBrush(gg.Solid(withOpacity(s.Edge, s.Opacity)))
	dc.SetLineWidth(c.points(s.EdgeWidth))
	return dc.Stroke()
}

// RoundBox is a rectangle grown by Pad on every side with corners
// rounded by the same amount.
type RoundBox struct {
	X, Y, W, H float64
	Pad        float64
	Style
}

func (RoundBox) Layer() Layer { return LayerShape }

func (b RoundBox) Bounds() Bounds {
	return Bounds{
		MinX: b.X - b.Pad, MinY: b.Y - b.Pad,
		MaxX: b.X + b.W + b.Pad, MaxY: b.Y + b.H + b.Pad,
	}
}

func (b RoundBox) draw(c *Canvas) error {
	bb := b.Bounds()
	c.dc.DrawRoundedRectangle(
		c.x(bb.MinX), c.y(bb.MaxY),
		c.dx(bb.MaxX-bb.MinX), c.dy(bb.MaxY-bb.MinY),
		c.dx(b.Pad),
	)
	return b.paint(c)
}

// Circle is measured in page widths, so it stays round on the
// non-square page.
type Circle struct {
	X, Y, R float64
	Style
}

func (Circle) Layer() Layer { return LayerShape }

func (ci Circle) Bounds() Bounds {
	ry := ci.R * PageWidthInches / PageHeightInches
	return Bounds{MinX: ci.X - ci.R, MinY: ci.Y - ry, MaxX: ci.X + ci.R, MaxY: ci.Y + ry}
}

func (ci Circle) draw(c *Canvas) error {
	c.dc.DrawCircle(c.x(ci.X), c.y(ci.Y), c.dx(ci.R))
	return ci.paint(c)
}

// Rect is a plain rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
	Style
}

func (Rect) Layer() Layer { return LayerShape }

func (r Rect) Bounds() Bounds {
	return Bounds{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

func (r Rect) draw(c *Canvas) error {
	c.dc.DrawRectangle(c.x(r.X), c.y(r.Y+r.H), c.dx(r.W), c.dy(r.H))
	return r.paint(c)
}

// Polygon is a closed outline through Points.
type Polygon struct {
	Points []Point
	Style
}

func (Polygon) Layer() Layer { return LayerShape }

func (p Polygon) Bounds() Bounds {
	if len(p.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, pt := range p.Points {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}
	return b
}

func (p Polygon) draw(c *Canvas) error {
	if len(p.Points) < 3 {
		return nil
	}
	c.dc.MoveTo(c.x(p.Points[0].X), c.y(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		c.dc.LineTo(c.x(pt.X), c.y(pt.Y))
	}
	c.dc.ClosePath()
	return p.paint(c)
}

// StarPoints samples n evenly spaced angles over [0, 2π] inclusive on a
// circle of radius r (in page widths, like Circle) around (cx, cy).
// The first and last points coincide, so n samples outline an (n-1)-gon.
func StarPoints(cx, cy, r float64, n int) []Point {
	if n < 2 {
		return nil
	}
	ry := r * PageWidthInches / PageHeightInches
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n-1)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
