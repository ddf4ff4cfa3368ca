// Package raster implements graphics.Canvas with pure-Go software
// rasterization. Paths are converted to coverage masks with
// golang.org/x/image/vector and composited per pixel, which gives the
// package full control over Porter-Duff blending — including the
// destination-out erase that hardware pipelines often lack.
package raster

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/go-drift/shade/pkg/graphics"
)

// Canvas is a software-rasterized implementation of graphics.Canvas.
// It draws into an in-memory RGBA image and supports the full layer and
// blend semantics the pipeline needs. Not safe for concurrent use.
type Canvas struct {
	base   *image.RGBA
	size   graphics.Size
	states []state
}

// state is one entry of the save/restore stack. A state either shares its
// parent's draw target (plain Save) or owns an off-screen layer (SaveLayer)
// that is composited when the state is popped.
type state struct {
	transform matrix
	clip      *image.Alpha // nil = unclipped
	target    *image.RGBA

	// Layer bookkeeping; zero values for plain saves.
	isLayer     bool
	layerBounds graphics.Rect
	layerPaint  *graphics.Paint
	layerAlpha  float64
}

// New creates a software canvas with a transparent backing image of the
// given pixel dimensions.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return NewForImage(img)
}

// NewForImage creates a software canvas drawing into an existing image.
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		base: img,
		size: graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
		states: []state{{
			transform:  identityMatrix(),
			target:     img,
			layerAlpha: 1,
		}},
	}
}

// Image returns the backing image. Pixels reflect all drawing up to the
// last completed Restore of any open layers; callers normally read it only
// after the frame finished.
func (c *Canvas) Image() *image.RGBA {
	return c.base
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() graphics.Size {
	return c.size
}

func (c *Canvas) top() *state {
	return &c.states[len(c.states)-1]
}

// Save pushes the current transform and clip state.
func (c *Canvas) Save() {
	top := *c.top()
	top.isLayer = false
	top.layerPaint = nil
	top.layerAlpha = 1
	c.states = append(c.states, top)
}

// SaveLayer redirects drawing into a fresh transparent buffer. Restore
// composites it onto the parent target with the given paint's alpha-carrying
// color and blend mode (nil paint = plain source-over).
func (c *Canvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	parent := c.top()
	layer := image.NewRGBA(c.base.Bounds())
	var paintCopy *graphics.Paint
	if paint != nil {
		p := *paint
		paintCopy = &p
	}
	c.states = append(c.states, state{
		transform:   parent.transform,
		clip:        parent.clip,
		target:      layer,
		isLayer:     true,
		layerBounds: bounds,
		layerPaint:  paintCopy,
		layerAlpha:  1,
	})
}

// SaveLayerAlpha saves a new layer composited with the given opacity.
func (c *Canvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.SaveLayer(bounds, nil)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.top().layerAlpha = alpha
}

// Restore pops the most recent state. If the popped state owns a layer,
// the layer is composited onto the restored target.
func (c *Canvas) Restore() {
	if len(c.states) <= 1 {
		return
	}
	popped := *c.top()
	c.states = c.states[:len(c.states)-1]
	if popped.isLayer {
		c.compositeLayer(popped)
	}
}

// compositeLayer merges a popped layer onto the current target, clipped to
// the layer bounds under the transform active when the layer was opened.
func (c *Canvas) compositeLayer(layer state) {
	cur := c.top()
	mode := graphics.BlendModeSrcOver
	alpha := layer.layerAlpha
	if layer.layerPaint != nil {
		mode = layer.layerPaint.BlendMode
		alpha *= layer.layerPaint.Color.Alpha()
	}

	region := c.deviceBounds(layer.layerBounds, layer.transform)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			src := premulAt(layer.target, x, y)
			src = src.scale(alpha)
			if cur.clip != nil {
				src = src.scale(float64(cur.clip.AlphaAt(x, y).A) / 255)
			}
			dst := premulAt(cur.target, x, y)
			setPremul(cur.target, x, y, blendPremul(src, dst, mode))
		}
	}
}

// deviceBounds maps a user-space rect through a transform and clamps it to
// the canvas pixel grid.
func (c *Canvas) deviceBounds(r graphics.Rect, m matrix) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	x0, y0 := m.apply(r.Left, r.Top)
	x1, y1 := m.apply(r.Right, r.Top)
	x2, y2 := m.apply(r.Right, r.Bottom)
	x3, y3 := m.apply(r.Left, r.Bottom)
	minX := math.Floor(math.Min(math.Min(x0, x1), math.Min(x2, x3)))
	minY := math.Floor(math.Min(math.Min(y0, y1), math.Min(y2, y3)))
	maxX := math.Ceil(math.Max(math.Max(x0, x1), math.Max(x2, x3)))
	maxY := math.Ceil(math.Max(math.Max(y0, y1), math.Max(y2, y3)))
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY)).Intersect(c.base.Bounds())
}

// Translate moves the origin by the given offset.
func (c *Canvas) Translate(dx, dy float64) {
	top := c.top()
	top.transform = top.transform.concat(translationMatrix(dx, dy))
}

// Scale scales the coordinate system by the given factors.
func (c *Canvas) Scale(sx, sy float64) {
	top := c.top()
	top.transform = top.transform.concat(scaleMatrix(sx, sy))
}

// Rotate rotates the coordinate system by radians.
func (c *Canvas) Rotate(radians float64) {
	top := c.top()
	top.transform = top.transform.concat(rotationMatrix(radians))
}

// ClipRect restricts future drawing to the given rectangle.
func (c *Canvas) ClipRect(rect graphics.Rect) {
	path := graphics.NewPath()
	path.AddRect(rect)
	c.ClipPath(path)
}

// ClipRRect restricts future drawing to the given rounded rectangle.
func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	path := graphics.NewPath()
	path.AddRRect(rrect)
	c.ClipPath(path)
}

// ClipPath intersects the clip with the path interior under the path's
// fill rule.
func (c *Canvas) ClipPath(path *graphics.Path) {
	top := c.top()
	mask := c.coverage(path, top.transform)
	if top.clip != nil {
		intersectMask(mask, top.clip)
	}
	top.clip = mask
}

// Clear fills the entire current target with the given color, replacing
// existing pixels. The clip does not apply.
func (c *Canvas) Clear(color graphics.Color) {
	top := c.top()
	px := premulColor(color)
	b := top.target.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			setPremul(top.target, x, y, px)
		}
	}
}

// DrawRect draws a rectangle with the provided paint.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawRRect(graphics.RRectFromRectAndRadius(rect, graphics.Radius{}), paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if rrect.Rect.IsEmpty() {
		return
	}
	if styleFills(paint.Style) {
		path := graphics.NewPath()
		path.AddRRect(rrect)
		c.fillPath(path, paint)
	}
	if styleStrokes(paint.Style) {
		c.fillPath(rrectStrokePath(rrect, paint.StrokeWidth), strokeAsFill(paint))
	}
}

// DrawCircle draws a circle with the provided paint.
func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	if styleFills(paint.Style) {
		path := graphics.NewPath()
		path.AddCircle(center, radius)
		c.fillPath(path, paint)
	}
	if styleStrokes(paint.Style) {
		c.fillPath(circleStrokePath(center, radius, paint.StrokeWidth), strokeAsFill(paint))
	}
}

// DrawLine draws a line segment with the provided paint.
func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.fillPath(lineStrokePath(start, end, paint.StrokeWidth), strokeAsFill(paint))
}

// DrawPath draws a path with the provided paint. Fills honor the path's
// fill rule; strokes are approximated by quadrilateral segments with round
// joins after flattening curves.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	if styleFills(paint.Style) {
		c.fillPath(path, paint)
	}
	if styleStrokes(paint.Style) {
		c.fillPath(pathStrokePath(path, paint.StrokeWidth), strokeAsFill(paint))
	}
}

func styleFills(s graphics.PaintStyle) bool {
	return s == graphics.PaintStyleFill || s == graphics.PaintStyleFillAndStroke
}

func styleStrokes(s graphics.PaintStyle) bool {
	return s == graphics.PaintStyleStroke || s == graphics.PaintStyleFillAndStroke
}

// strokeAsFill converts a stroke paint into the fill paint used for the
// derived stroke-outline geometry.
func strokeAsFill(paint graphics.Paint) graphics.Paint {
	out := paint
	out.Style = graphics.PaintStyleFill
	out.StrokeWidth = 0
	return out
}

// fillPath draws the shadow layer (if any) and then the path interior with
// the paint's color and blend mode.
func (c *Canvas) fillPath(path *graphics.Path, paint graphics.Paint) {
	top := c.top()
	if paint.Shadow != nil {
		c.drawShadowMask(path, *paint.Shadow)
	}
	mask := c.coverage(path, top.transform)
	c.blendMask(mask, premulColor(paint.Color), paint.BlendMode)
}

// drawShadowMask rasterizes the shape silhouette shifted by the shadow
// offset, blurs it, and composites it source-over behind the upcoming fill.
func (c *Canvas) drawShadowMask(path *graphics.Path, shadow graphics.ShadowLayer) {
	top := c.top()
	m := top.transform.concat(translationMatrix(shadow.Offset.X, shadow.Offset.Y))
	mask := c.coverage(path, m)

	silhouette := image.NewRGBA(c.base.Bounds())
	px := premulColor(shadow.Color)
	b := silhouette.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			if cov > 0 {
				setPremul(silhouette, x, y, px.scale(cov))
			}
		}
	}
	soft := silhouette
	if shadow.Radius > 0 {
		soft = blur.Gaussian(silhouette, shadow.Radius)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src := premulAt(soft, x, y)
			if src.a == 0 {
				continue
			}
			if top.clip != nil {
				src = src.scale(float64(top.clip.AlphaAt(x, y).A) / 255)
			}
			dst := premulAt(top.target, x, y)
			setPremul(top.target, x, y, blendPremul(src, dst, graphics.BlendModeSrcOver))
		}
	}
}

// blendMask composites a solid premultiplied color through a coverage mask
// onto the current target, applying the clip and blend mode.
func (c *Canvas) blendMask(mask *image.Alpha, px premul, mode graphics.BlendMode) {
	top := c.top()
	b := c.base.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			if top.clip != nil {
				cov *= float64(top.clip.AlphaAt(x, y).A) / 255
			}
			// Pixels outside the shape's coverage are untouched: this is
			// shape drawing, not full-surface compositing.
			if cov == 0 {
				continue
			}
			src := px.scale(cov)
			dst := premulAt(top.target, x, y)
			setPremul(top.target, x, y, blendPremul(src, dst, mode))
		}
	}
}
