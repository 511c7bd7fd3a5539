package imaging

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes a resolved color in several representations.
//
// Unit holds the exact [0,1] components the sprite pipeline works with, so
// callers can see precisely what a token resolved to.
type ColorResult struct {
	Hex  string     `json:"hex"`  // Hex format "#RRGGBB"
	RGB  RGBColor   `json:"rgb"`  // 8-bit components
	Unit [3]float64 `json:"unit"` // Components in [0,1]
	HSL  HSLColor   `json:"hsl"`  // HSL representation
}

// DescribeColor converts c into a ColorResult. Components outside [0,1]
// are clamped first.
func DescribeColor(c colorful.Color) ColorResult {
	c = c.Clamped()
	r8, g8, b8 := c.RGB255()
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return ColorResult{
		Hex:  c.Hex(),
		RGB:  RGBColor{R: r8, G: g8, B: b8},
		Unit: [3]float64{c.R, c.G, c.B},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
