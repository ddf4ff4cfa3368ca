package shadowbox

import "github.com/go-drift/shade/pkg/graphics"

// borderCenterDivisor is the fraction of border width the border rect is
// inset from the content rect. The one-third ratio is an empirical
// visual-tuning constant, kept verbatim: centering wide borders exactly on
// the content edge looks worse than pulling them slightly inward.
const borderCenterDivisor = 3.0

// frameGeometry holds the rectangles derived from the current container
// size. It starts unresolved; drawing is skipped until the first resize
// delivers a size, so no pass ever consumes an undefined rectangle.
type frameGeometry struct {
	content   graphics.Rect
	border    graphics.Rect
	hasBorder bool
	resolved  bool
}

// resolve recomputes the rectangles for a container size. The content rect
// is the size inset by the padding; the border rect exists only for a
// positive border width and sits borderWidth/3 inside the content rect.
func (g *frameGeometry) resolve(size graphics.Size, padding graphics.EdgeInsets, borderWidth float64) {
	g.content = graphics.Rect{
		Left:   padding.Left,
		Top:    padding.Top,
		Right:  size.Width - padding.Right,
		Bottom: size.Height - padding.Bottom,
	}
	g.hasBorder = borderWidth > 0
	if g.hasBorder {
		g.border = g.content.Inset(borderWidth / borderCenterDivisor)
	} else {
		g.border = graphics.Rect{}
	}
	g.resolved = true
}
