package poster

import (
	"github.com/gogpu/gg"
)

// Palette colors shared by both layouts.
var (
	White       = gg.Hex("#FFFFFF")
	LightGray   = gg.Hex("#D3D3D3")
	PrimaryBlue = gg.Hex("#005A9C")
	TextDark    = gg.Hex("#1A202C")
)

// Plain layout colors.
var (
	AccentYellow = gg.Hex("#FFC400")
	PaleBlue     = gg.Hex("#E6F0F9")
	PlainPaper   = White
)

// Modern layout colors.
var (
	AccentBlue   = gg.Hex("#4FC3F7")
	AccentPurple = gg.Hex("#8E24AA")
	AccentOrange = gg.Hex("#FF7043")
	LightBlue    = gg.Hex("#E3F2FD")
	LightPurple  = gg.Hex("#F3E5F5")
	LightOrange  = gg.Hex("#FFE0B2")
	ModernPaper  = gg.Hex("#F8F9FA")
)

// bluesStops is the sequential "Blues" colormap from light to dark,
// sampled at nine evenly spaced offsets.
var bluesStops = []gg.RGBA{
	gg.Hex("#F7FBFF"),
	gg.Hex("#DEEBF7"),
	gg.Hex("#C6DBEF"),
	gg.Hex("#9ECAE1"),
	gg.Hex("#6BAED6"),
	gg.Hex("#4292C6"),
	gg.Hex("#2171B5"),
	gg.Hex("#08519C"),
	gg.Hex("#08306B"),
}

// withOpacity scales the alpha of c by opacity. A zero opacity means
// fully opaque, matching the gg.DrawImageOptions convention.
func withOpacity(c gg.RGBA, opacity float64) gg.RGBA {
	if opacity == 0 {
		return c
	}
	c.A *= opacity
	return c
}
