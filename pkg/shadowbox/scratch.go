package shadowbox

import "github.com/go-drift/shade/pkg/graphics"

// scratch owns the one mutable paint and the one mutable mask path a Box
// reuses across its drawing passes. Every pass configures the paint, draws,
// and must call reset before the next pass runs; a stale stroke width or
// blend mode bleeding into the following pass is the dominant correctness
// hazard of the pipeline.
//
// Each Box owns its own scratch. Sharing one between concurrently drawing
// boxes would corrupt both.
type scratch struct {
	paint graphics.Paint
	path  graphics.Path
}

func newScratch() *scratch {
	s := &scratch{
		path: graphics.Path{FillRule: graphics.FillRuleEvenOdd},
	}
	s.paint.Reset(graphics.ColorWhite)
	return s
}

// reset restores the paint to the neutral baseline (opaque white fill,
// anti-alias on, zero stroke, source-over, no shadow) and empties the mask
// path. The path keeps its even-odd fill rule.
func (s *scratch) reset() {
	s.paint.Reset(graphics.ColorWhite)
	s.path.Clear()
}
