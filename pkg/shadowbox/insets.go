package shadowbox

import (
	"math"

	"github.com/go-drift/shade/pkg/graphics"
)

// ComputeInsets returns the padding the container must reserve so its
// shadow is never clipped by its own bounds.
//
// The horizontal reserve is shadow width plus the absolute horizontal
// offset; the vertical reserve is shadow width plus the absolute vertical
// offset. An edge gets the full reserve for its axis iff its side is in
// the configured set, else zero.
func ComputeInsets(config Config) graphics.EdgeInsets {
	reserveX := config.ShadowWidth + math.Abs(config.Dx)
	reserveY := config.ShadowWidth + math.Abs(config.Dy)

	var insets graphics.EdgeInsets
	if config.Sides.Has(SideLeft) {
		insets.Left = reserveX
	}
	if config.Sides.Has(SideTop) {
		insets.Top = reserveY
	}
	if config.Sides.Has(SideRight) {
		insets.Right = reserveX
	}
	if config.Sides.Has(SideBottom) {
		insets.Bottom = reserveY
	}
	return insets
}
