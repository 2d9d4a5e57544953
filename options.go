package poster

import (
	"github.com/gogpu/gg"
)

// Physical page size in inches and default output resolution.
const (
	PageWidthInches  = 10.0
	PageHeightInches = 15.0
	DefaultDPI       = 300.0
)

// cropPadInches is the margin kept around the content when cropping.
const cropPadInches = 0.1

// RenderOption configures a Canvas during creation.
//
// Example:
//
//	// Defaults: 300 DPI, system fonts, cropped export
//	err := poster.RenderPlain("poster.png")
//
//	// Quick preview at low resolution
//	err := poster.RenderPlain("preview.png", poster.WithDPI(72))
type RenderOption func(*renderOptions)

type renderOptions struct {
	dpi       float64
	faceColor *gg.RGBA
	crop      bool
	fontDirs  []string
	fontFiles map[FontStyle]string
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		dpi:  DefaultDPI,
		crop: true,
	}
}

// WithDPI sets the output resolution in dots per inch.
// The page is always 10x15 inches, so the uncropped image is
// 10*dpi by 15*dpi pixels.
func WithDPI(dpi float64) RenderOption {
	return func(o *renderOptions) {
		o.dpi = dpi
	}
}

// WithFaceColor overrides the page background color of the layout.
func WithFaceColor(c gg.RGBA) RenderOption {
	return func(o *renderOptions) {
		o.faceColor = &c
	}
}

// WithoutCrop disables bounding-box cropping on export.
func WithoutCrop() RenderOption {
	return func(o *renderOptions) {
		o.crop = false
	}
}

// WithFontDirs replaces the OS font directories searched for the
// fallback families.
func WithFontDirs(dirs ...string) RenderOption {
	return func(o *renderOptions) {
		o.fontDirs = append([]string(nil), dirs...)
	}
}

// WithFontFile puts a specific font file first in the fallback chain of
// the given style. Unlike the system search, a file configured here must
// load or rendering fails with a *FontLoadError.
func WithFontFile(style FontStyle, path string) RenderOption {
	return func(o *renderOptions) {
		if o.fontFiles == nil {
			o.fontFiles = make(map[FontStyle]string)
		}
		o.fontFiles[style] = path
	}
}
