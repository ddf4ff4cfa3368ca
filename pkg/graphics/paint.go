package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// BlendMode controls how source and destination colors are composited.
// The values cover the Porter-Duff compositing operators.
type BlendMode int

const (
	BlendModeClear   BlendMode = iota // clear
	BlendModeSrc                      // src
	BlendModeDst                      // dst
	BlendModeSrcOver                  // src_over
	BlendModeDstOver                  // dst_over
	BlendModeSrcIn                    // src_in
	BlendModeDstIn                    // dst_in
	BlendModeSrcOut                   // src_out
	BlendModeDstOut                   // dst_out
	BlendModeSrcATop                  // src_atop
	BlendModeDstATop                  // dst_atop
	BlendModeXor                      // xor
	BlendModePlus                     // plus
)

var _BlendMode_names = []string{
	"clear", "src", "dst", "src_over", "dst_over",
	"src_in", "dst_in", "src_out", "dst_out",
	"src_atop", "dst_atop", "xor", "plus",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(_BlendMode_names) {
		return _BlendMode_names[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}

// Paint describes how to draw a shape on the canvas.
//
// A Paint is a plain mutable record. Code that reuses one Paint across
// several drawing passes must call Reset between passes so that each pass
// starts from the neutral baseline instead of inheriting stroke widths,
// blend modes, or shadow layers from the previous pass.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels
	AntiAlias   bool       // Edge anti-aliasing

	// Compositing
	BlendMode BlendMode // Porter-Duff operator; BlendModeSrcOver is neutral

	// Shadow draws a blurred silhouette of the shape behind it.
	// Nil means no shadow.
	Shadow *ShadowLayer
}

// DefaultPaint returns a paint at the neutral baseline: opaque white fill,
// anti-aliased, zero stroke width, source-over compositing, no shadow.
func DefaultPaint() Paint {
	return Paint{
		Color:     ColorWhite,
		Style:     PaintStyleFill,
		AntiAlias: true,
		BlendMode: BlendModeSrcOver,
	}
}

// Reset restores the paint to the neutral baseline with the given base color:
// fill style, anti-alias on, zero stroke width, source-over blend, no shadow.
func (p *Paint) Reset(base Color) {
	p.Color = base
	p.Style = PaintStyleFill
	p.StrokeWidth = 0
	p.AntiAlias = true
	p.BlendMode = BlendModeSrcOver
	p.Shadow = nil
}

// IsNeutral reports whether the paint is at the baseline state Reset
// produces, ignoring the color.
func (p *Paint) IsNeutral() bool {
	return p.Style == PaintStyleFill &&
		p.StrokeWidth == 0 &&
		p.AntiAlias &&
		p.BlendMode == BlendModeSrcOver &&
		p.Shadow == nil
}
