package shadowbox

import "github.com/go-drift/shade/pkg/graphics"

// Draw renders one frame: shadow, corner-masked content, border, in that
// order. The ordering is the pipeline's primary correctness property — the
// shadow must be fully composited before the child callback draws so
// content sits above it, and corner masking must run after the children but
// before the border so the border is stroked on the already-rounded edge.
//
// drawChild is invoked exactly once, inside the content pass; the pipeline
// treats it as opaque. A nil canvas, or geometry not yet resolved by a
// Resize call, skips the whole frame. Nothing is retried and no error is
// surfaced: a frame either completes all three passes or leaves the canvas
// untouched.
func (b *Box) Draw(canvas graphics.Canvas, drawChild func(graphics.Canvas)) {
	if canvas == nil || !b.geom.resolved {
		return
	}
	b.drawShadowPass(canvas)
	b.drawContentPass(canvas, drawChild)
	b.drawBorderPass(canvas)
}

// drawShadowPass fills the content rounded rect with a shadow-layer paint.
// With zero shadow width the shape still draws (a hard silhouette hidden
// behind the content), which keeps the pass structurally identical for
// degenerate configs.
func (b *Box) drawShadowPass(canvas graphics.Canvas) {
	canvas.Save()
	paint := &b.scratch.paint
	paint.Shadow = graphics.NewShadowLayer(
		b.config.ShadowWidth, b.config.Dx, b.config.Dy, b.config.ShadowColor)
	rrect := graphics.RRectFromRectAndRadius(
		b.geom.content, graphics.CircularRadius(b.config.CornerRadius))
	canvas.DrawRRect(rrect, *paint)
	canvas.Restore()
	b.scratch.reset()
}

// drawContentPass opens a transparent layer, lets the child callback draw,
// then erases the four corner bites with an even-odd mask filled in
// destination-out blend. Closing the layer composites the rounded content
// onto the canvas in one step.
func (b *Box) drawContentPass(canvas graphics.Canvas, drawChild func(graphics.Canvas)) {
	canvas.Save()
	canvas.SaveLayer(graphics.RectFromSize(canvas.Size()), nil)

	if drawChild != nil {
		drawChild(canvas)
	}

	// The mask region is inside the content rect but outside the rounded
	// rect: exactly the sharp corners the child layer must lose.
	path := &b.scratch.path
	path.AddRect(b.geom.content)
	path.AddRRect(graphics.RRectFromRectAndRadius(
		b.geom.content, graphics.CircularRadius(b.config.CornerRadius)))

	paint := &b.scratch.paint
	paint.BlendMode = graphics.BlendModeDstOut
	canvas.DrawPath(path, *paint)
	b.scratch.reset()

	canvas.Restore() // composites the layer
	canvas.Restore()
}

// drawBorderPass strokes the border rounded rect. Skipped entirely when no
// border rect exists (border width is zero).
func (b *Box) drawBorderPass(canvas graphics.Canvas) {
	if !b.geom.hasBorder {
		return
	}
	canvas.Save()
	paint := &b.scratch.paint
	paint.Color = b.config.BorderColor
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = b.config.BorderWidth
	rrect := graphics.RRectFromRectAndRadius(
		b.geom.border, graphics.CircularRadius(b.config.CornerRadius))
	canvas.DrawRRect(rrect, *paint)
	canvas.Restore()
	b.scratch.reset()
}
