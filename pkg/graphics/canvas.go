package graphics

// Canvas records or renders drawing commands.
//
// Implementations must honor the Porter-Duff blend mode carried by the
// Paint on every draw call, including BlendModeDstOut, which erases
// destination pixels where source alpha is drawn. Compositing tricks such
// as rounded-corner masking depend on it.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// SaveLayer redirects drawing into a fresh transparent off-screen
	// buffer covering bounds. The matching Restore composites the buffer
	// onto the underlying surface, applying the optional paint's alpha
	// and blend mode. A nil paint composites source-over at full opacity.
	SaveLayer(bounds Rect, paint *Paint)

	// SaveLayerAlpha saves a new layer composited with the given opacity
	// (0.0 to 1.0) on Restore.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent transform and clip state.
	// If the popped entry is a layer, the layer is composited.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// ClipPath restricts future drawing to the path interior under the
	// path's fill rule.
	ClipPath(path *Path)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	// The paint's stroke width applies regardless of its style.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath draws a path with the provided paint, honoring the path's
	// fill rule when filling.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
