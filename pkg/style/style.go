// Package style reads the named style properties a shadow container is
// configured from and converts them into physical-pixel values.
package style

import "math"

// Length is a display-independent length. It must be converted to physical
// pixels with Pixels before any rendering code consumes it.
type Length float64

// Pixels converts the length to physical pixels using the device density
// scale: px = value*scale + 0.5, truncated. This is the standard
// round-to-nearest conversion for density-independent units.
func (l Length) Pixels(scale float64) float64 {
	return math.Trunc(float64(l)*scale + 0.5)
}

// Attributes is the set of named style properties consumed at container
// construction time. Lengths are display-independent; colors are hex
// strings ("#rgb", "#rrggbb", or "#aarrggbb").
type Attributes struct {
	ShadowColor  string   `yaml:"shadowColor"`
	ShadowWidth  Length   `yaml:"shadowWidth"`
	Dx           Length   `yaml:"dx"`
	Dy           Length   `yaml:"dy"`
	CornerRadius Length   `yaml:"cornerRadius"`
	BorderColor  string   `yaml:"borderColor"`
	BorderWidth  Length   `yaml:"borderWidth"`
	ShadowSides  []string `yaml:"shadowSides"` // nil = all four sides
}

// DefaultAttributes returns the documented property defaults: no shadow
// spread or offset, square corners, white zero-width border, shadow on all
// four sides, black shadow color.
func DefaultAttributes() Attributes {
	return Attributes{
		ShadowColor: "#000000",
		BorderColor: "#ffffff",
	}
}
