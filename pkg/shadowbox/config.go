package shadowbox

import (
	"fmt"

	"github.com/go-drift/shade/pkg/graphics"
	"github.com/go-drift/shade/pkg/style"
)

// Config is the full set of geometric and color parameters for one Box.
// All lengths are physical pixels. A Config is built once, at container
// construction, and is read-only afterwards: the drawing passes never
// mutate it mid-frame.
//
// Degenerate values are valid inputs, not errors: zero shadow width and
// zero border width make their passes visual no-ops, and a zero corner
// radius masks to a plain rectangle.
type Config struct {
	ShadowColor  graphics.Color
	ShadowWidth  float64 // blur spread, >= 0
	Dx           float64 // horizontal shadow offset, signed
	Dy           float64 // vertical shadow offset, signed
	CornerRadius float64 // uniform corner radius, >= 0
	BorderColor  graphics.Color
	BorderWidth  float64 // stroke width, >= 0; 0 disables the border pass
	Sides        SideSet // edges that reserve shadow padding
}

// DefaultConfig returns the documented defaults: black shadow with no
// spread or offset, square corners, white zero-width border, shadow
// padding reserved on all four sides.
func DefaultConfig() Config {
	return Config{
		ShadowColor: graphics.ColorBlack,
		BorderColor: graphics.ColorWhite,
		Sides:       SidesAll,
	}
}

// ConfigFromAttributes resolves named style properties into a Config,
// converting every length from display-independent units to physical
// pixels with the given density scale.
func ConfigFromAttributes(attrs style.Attributes, scale float64) (Config, error) {
	shadowColor, err := style.ParseColor(attrs.ShadowColor)
	if err != nil {
		return Config{}, fmt.Errorf("shadowColor: %w", err)
	}
	borderColor, err := style.ParseColor(attrs.BorderColor)
	if err != nil {
		return Config{}, fmt.Errorf("borderColor: %w", err)
	}
	sides, err := ParseSideSet(attrs.ShadowSides)
	if err != nil {
		return Config{}, fmt.Errorf("shadowSides: %w", err)
	}
	return Config{
		ShadowColor:  shadowColor,
		ShadowWidth:  attrs.ShadowWidth.Pixels(scale),
		Dx:           attrs.Dx.Pixels(scale),
		Dy:           attrs.Dy.Pixels(scale),
		CornerRadius: attrs.CornerRadius.Pixels(scale),
		BorderColor:  borderColor,
		BorderWidth:  attrs.BorderWidth.Pixels(scale),
		Sides:        sides,
	}, nil
}
