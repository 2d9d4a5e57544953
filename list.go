package poster

import (
	"github.com/gogpu/gg"
)

// ListItem is one row of a card list: literal text and its accent color.
type ListItem struct {
	Text  string
	Color gg.RGBA
}

// Marker is the shape drawn in front of each list row.
type Marker int

// List markers.
const (
	MarkerNone   Marker = iota // the text carries its own glyph
	MarkerBullet               // filled circle
	MarkerStar                 // pentagon from StarPoints
)

// starSamples is the number of angles sampled for a star marker.
const starSamples = 6

// List lays out rows top to bottom, Step apart, starting at Y.
type List struct {
	MarkerX       float64
	TextX         float64
	Y             float64
	Step          float64
	Marker        Marker
	MarkerSize    float64
	MarkerOpacity float64
	Prefix        string
	FontSize      float64
	Weight        Weight
	TextColor     gg.RGBA
}

// Drawables returns the markers and labels for items in stacking order.
func (l List) Drawables(items []ListItem) []Drawable {
	out := make([]Drawable, 0, 2*len(items))
	for i, it := range items {
		y := l.Y - float64(i)*l.Step
		style := Style{Fill: it.Color, Opacity: l.MarkerOpacity}
		switch l.Marker {
		case MarkerBullet:
			out = append(out, Circle{X: l.MarkerX, Y: y, R: l.MarkerSize, Style: style})
		case MarkerStar:
			out = append(out, Polygon{Points: StarPoints(l.MarkerX, y, l.MarkerSize, starSamples), Style: style})
		}
		out = append(out, TextLabel{
			Text:   l.Prefix + it.Text,
			X:      l.TextX,
			Y:      y,
			Size:   l.FontSize,
			Weight: l.Weight,
			Color:  l.TextColor,
			Align:  AlignLeft,
		})
	}
	return out
}
