package poster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	// Extra formats accepted for the background photo.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixel size the background photo is resampled to before compositing.
const (
	BackgroundWidth  = 800
	BackgroundHeight = 600
)

// Background is a decoded photo resampled to a fixed size.
type Background struct {
	Path  string
	Image image.Image
}

// LoadBackground opens the photo at path, applies its EXIF orientation
// and resamples it to width x height with a Lanczos filter.
//
// Every failure wraps ErrBackgroundUnavailable. Callers that treat the
// photo as optional check for it and render without the photo layer.
func LoadBackground(path string, width, height int) (*Background, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackgroundUnavailable, path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrBackgroundUnavailable, path)
	}
	return &Background{
		Path:  path,
		Image: imaging.Resize(img, width, height, imaging.Lanczos),
	}, nil
}

// ImageLayer stretches a raster over a normalized rectangle anchored at
// its lower-left corner.
type ImageLayer struct {
	Image      image.Image
	X, Y, W, H float64
	Opacity    float64
}

func (ImageLayer) Layer() Layer { return LayerImage }

func (l ImageLayer) Bounds() Bounds {
	return Bounds{MinX: l.X, MinY: l.Y, MaxX: l.X + l.W, MaxY: l.Y + l.H}
}

func (l ImageLayer) draw(c *Canvas) error {
	if l.Image == nil {
		return nil
	}
	c.dc.DrawImageEx(gg.ImageBufFromImage(l.Image), gg.DrawImageOptions{
		X:             c.x(l.X),
		Y:             c.y(l.Y + l.H),
		DstWidth:      c.dx(l.W),
		DstHeight:     c.dy(l.H),
		Interpolation: gg.InterpBicubic,
		Opacity:       l.Opacity,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// GradientLayer fills a normalized rectangle with a vertical gradient
// through Stops, the first stop at the top edge.
type GradientLayer struct {
	X, Y, W, H float64
	Stops      []gg.RGBA
	Opacity    float64
}

func (GradientLayer) Layer() Layer { return LayerImage }

func (g GradientLayer) Bounds() Bounds {
	return Bounds{MinX: g.X, MinY: g.Y, MaxX: g.X + g.W, MaxY: g.Y + g.H}
}

func (g GradientLayer) draw(c *Canvas) error {
	if len(g.Stops) == 0 {
		return nil
	}
	top, bottom := c.y(g.Y+g.H), c.y(g.Y)
	brush := gg.NewLinearGradientBrush(0, top, 0, bottom)
	last := max(len(g.Stops)-1, 1)
	for i, s := range g.Stops {
		brush.AddColorStop(float64(i)/float64(last), withOpacity(s, g.Opacity))
	}
	c.dc.SetFillBrush(brush)
	c.dc.DrawRectangle(c.x(g.X), top, c.dx(g.W), bottom-top)
	return c.dc.Fill()
}

// BluesOverlay is the colormap gradient laid over the upper part of the
// modern poster, light at the top edge and darkest at y.
func BluesOverlay(y, opacity float64) GradientLayer {
	return GradientLayer{X: 0, Y: y, W: 1, H: 1 - y, Stops: bluesStops, Opacity: opacity}
}
