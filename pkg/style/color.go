package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/shade/pkg/graphics"
)

// ParseColor parses a hex color string into an ARGB color.
//
// Accepted forms: "#rgb", "#rrggbb" (opaque), and "#aarrggbb" with a
// leading alpha byte. The empty string parses as transparent.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return graphics.ColorTransparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("invalid color %q: missing '#' prefix", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return graphics.RGB(r, g, b), nil
	case 8:
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: bad alpha: %w", s, err)
		}
		c, err := colorful.Hex("#" + hex[2:])
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return graphics.RGBA8(r, g, b, uint8(a)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #rgb, #rrggbb, or #aarrggbb", s)
	}
}
