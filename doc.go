// Package poster renders the BHAD recruitment posters.
//
// # Overview
//
// A poster is a fixed arrangement of shapes and Vietnamese text on a
// 10x15 inch page, rasterized with the gg 2D graphics library and saved
// as a 300 DPI PNG. Two layouts exist: [Plain] on a white page and
// [Modern], which composites an optional background photo under a
// gradient overlay.
//
// # Quick Start
//
//	import "github.com/gogpu/poster"
//
//	if err := poster.RenderPlain(poster.PlainOutput); err != nil {
//	    log.Fatal(err)
//	}
//
//	// The photo is optional: a missing or corrupt file renders without it.
//	err := poster.RenderModern(poster.ModernOutput, poster.DefaultBackground)
//
// # Coordinate System
//
// Layouts use normalized page coordinates:
//   - Origin (0,0) at bottom-left, (1,1) at top-right
//   - Y increases up
//   - Circle radii and star markers are measured in page widths
//   - Font sizes and edge widths are in points (1/72 inch)
//
// # Stacking
//
// Images are painted first, then shapes, then text. Within each group
// the order of [Canvas.Add] decides what ends up on top.
//
// # Fonts
//
// Labels are drawn through a per-glyph fallback chain of system fonts
// able to render Vietnamese (Arial Unicode MS, SimHei, DejaVu Sans and
// other common families), an emoji font when present, and finally the
// embedded Go fonts.
package poster
