package poster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
)

// Default file locations, relative to the working directory.
const (
	PlainOutput       = "poster_tuyen_dung_bhad.png"
	ModernOutput      = "poster_modern_canva_style.png"
	DefaultBackground = "imgs/professional_garment_factory_worker_sewing.jpg"
)

// Layout places a fixed poster design on a canvas.
type Layout interface {
	Name() string
	FaceColor() gg.RGBA
	Build(c *Canvas)
}

var (
	_ Layout = Plain{}
	_ Layout = (*Modern)(nil)
)

// Render builds l on a fresh canvas and writes it to path as PNG,
// replacing any existing file. The canvas is released before returning.
func Render(l Layout, path string, opts ...RenderOption) (err error) {
	c, err := NewCanvas(l.FaceColor(), opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()

	l.Build(c)
	Logger().Debug("poster: layout built", "layout", l.Name(), "items", len(c.items))
	return c.SavePNG(path)
}

// RenderPlain writes the plain poster to path.
func RenderPlain(path string, opts ...RenderOption) error {
	return Render(Plain{}, path, opts...)
}

// RenderModern writes the modern poster to path. The background photo
// at backgroundPath is optional; see NewModern.
func RenderModern(path, backgroundPath string, opts ...RenderOption) error {
	return Render(NewModern(backgroundPath), path, opts...)
}

// Describe returns the base name of a written poster followed by its
// size, e.g. "poster.png (1.2 MB)". The size is omitted when the file
// cannot be inspected.
func Describe(path string) string {
	name := filepath.Base(path)
	info, err := os.Stat(path)
	if err != nil {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, humanize.Bytes(uint64(info.Size())))
}
