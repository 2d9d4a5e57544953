package poster

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Canvas is a 10x15 inch page addressed in normalized coordinates:
// x and y run from 0 to 1 with the origin at the bottom-left corner.
//
// Drawables are collected with Add and rasterized once, on export,
// layer by layer. Canvas implements io.Closer and is not safe for
// concurrent use.
type Canvas struct {
	dpi       float64
	width     int
	height    int
	faceColor gg.RGBA
	crop      bool

	dc    *gg.Context
	fonts *FontSet
	items []Drawable

	rasterized bool
	closed     bool
}

// NewCanvas creates a page filled with faceColor. Fonts are resolved
// here, so a misconfigured WithFontFile fails early.
func NewCanvas(faceColor gg.RGBA, opts ...RenderOption) (*Canvas, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.dpi > 0) || math.IsInf(o.dpi, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDPI, o.dpi)
	}
	if o.faceColor != nil {
		faceColor = *o.faceColor
	}

	fonts, err := NewFontSet(o.fontDirs, o.fontFiles)
	if err != nil {
		return nil, err
	}

	w := int(math.Round(PageWidthInches * o.dpi))
	h := int(math.Round(PageHeightInches * o.dpi))
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(faceColor)

	return &Canvas{
		dpi:       o.dpi,
		width:     w,
		height:    h,
		faceColor: faceColor,
		crop:      o.crop,
		dc:        dc,
		fonts:     fonts,
	}, nil
}

// Add appends drawables in stacking order.
func (c *Canvas) Add(items ...Drawable) {
	c.items = append(c.items, items...)
}

// Items returns the drawables added so far.
func (c *Canvas) Items() []Drawable {
	return slices.Clone(c.items)
}

// Labels returns every text label added so far.
func (c *Canvas) Labels() []TextLabel {
	var labels []TextLabel
	for _, it := range c.items {
		if l, ok := it.(TextLabel); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Fonts returns the font set used for labels.
func (c *Canvas) Fonts() *FontSet { return c.fonts }

// DPI returns the output resolution.
func (c *Canvas) DPI() float64 { return c.dpi }

// Size returns the uncropped page size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// FaceColor returns the page background color.
func (c *Canvas) FaceColor() gg.RGBA { return c.faceColor }

func (c *Canvas) x(nx float64) float64 { return nx * float64(c.width) }
func (c *Canvas) y(ny float64) float64 { return (1 - ny) * float64(c.height) }
func (c *Canvas) dx(n float64) float64 { return n * float64(c.width) }
func (c *Canvas) dy(n float64) float64 { return n * float64(c.height) }

// points converts a length in points to pixels.
func (c *Canvas) points(pt float64) float64 { return pt * c.dpi / 72 }

// rasterize paints every drawable, lowest layer first. It runs once;
// drawables added afterwards are ignored.
func (c *Canvas) rasterize() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if c.rasterized {
		return nil
	}
	ordered := slices.Clone(c.items)
	slices.SortStableFunc(ordered, func(a, b Drawable) int {
		return int(a.Layer()) - int(b.Layer())
	})
	for i, it := range ordered {
		if err := it.draw(c); err != nil {
			return fmt.Errorf("poster: draw item %d (%T): %w", i, it, err)
		}
	}
	c.rasterized = true
	return nil
}

// Image rasterizes the page and returns the exported image: cropped to
// the content plus a 0.1 inch margin (unless WithoutCrop) and flattened
// onto the face color.
func (c *Canvas) Image() (image.Image, error) {
	if err := c.rasterize(); err != nil {
		return nil, err
	}
	img := c.dc.Image()
	bounds := img.Bounds()
	if c.crop {
		pad := int(math.Round(cropPadInches * c.dpi))
		bounds = CropToContent(img, c.faceColor, pad)
	}
	return flatten(img, bounds, c.faceColor), nil
}

// Close releases the drawing context and fonts. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.items = nil
	ferr := c.fonts.Close()
	if err := c.dc.Close(); err != nil {
		return err
	}
	return ferr
}
