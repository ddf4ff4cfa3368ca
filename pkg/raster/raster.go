package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/shade/pkg/graphics"
)

// matrix is a row-major 2x3 affine transform.
type matrix struct {
	xx, xy, tx float64
	yx, yy, ty float64
}

func identityMatrix() matrix {
	return matrix{xx: 1, yy: 1}
}

func translationMatrix(dx, dy float64) matrix {
	return matrix{xx: 1, yy: 1, tx: dx, ty: dy}
}

func scaleMatrix(sx, sy float64) matrix {
	return matrix{xx: sx, yy: sy}
}

func rotationMatrix(radians float64) matrix {
	sin, cos := math.Sincos(radians)
	return matrix{xx: cos, xy: -sin, yx: sin, yy: cos}
}

// apply maps a user-space point to device space.
func (m matrix) apply(x, y float64) (float64, float64) {
	return m.xx*x + m.xy*y + m.tx, m.yx*x + m.yy*y + m.ty
}

// concat returns the transform that applies other first, then m.
func (m matrix) concat(other matrix) matrix {
	return matrix{
		xx: m.xx*other.xx + m.xy*other.yx,
		xy: m.xx*other.xy + m.xy*other.yy,
		tx: m.xx*other.tx + m.xy*other.ty + m.tx,
		yx: m.yx*other.xx + m.yy*other.yx,
		yy: m.yx*other.xy + m.yy*other.yy,
		ty: m.yx*other.tx + m.yy*other.ty + m.ty,
	}
}

// coverage rasterizes the path under the transform into an 8-bit coverage
// mask the size of the canvas.
//
// The even-odd rule is evaluated by rasterizing each subpath separately and
// folding the masks together with a saturating XOR; two nested clockwise
// shapes therefore produce the annulus between them, which a winding
// rasterizer cannot express directly.
func (c *Canvas) coverage(path *graphics.Path, m matrix) *image.Alpha {
	bounds := c.base.Bounds()
	if path.FillRule == graphics.FillRuleEvenOdd {
		subs := path.Subpaths()
		if len(subs) > 1 {
			acc := rasterizePath(subs[0], m, bounds)
			for _, sp := range subs[1:] {
				xorMask(acc, rasterizePath(sp, m, bounds))
			}
			return acc
		}
	}
	return rasterizePath(path, m, bounds)
}

// rasterizePath fills one path (all subpaths at once) with the vector
// rasterizer's accumulation rule.
func rasterizePath(path *graphics.Path, m matrix, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || path == nil || path.IsEmpty() {
		return mask
	}

	var r vector.Rasterizer
	r.Reset(w, h)
	r.DrawOp = draw.Src

	open := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			if open {
				r.ClosePath()
			}
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			r.MoveTo(float32(x), float32(y))
			open = true
		case graphics.PathOpLineTo:
			x, y := m.apply(cmd.Args[0], cmd.Args[1])
			r.LineTo(float32(x), float32(y))
		case graphics.PathOpQuadTo:
			x1, y1 := m.apply(cmd.Args[0], cmd.Args[1])
			x2, y2 := m.apply(cmd.Args[2], cmd.Args[3])
			r.QuadTo(float32(x1), float32(y1), float32(x2), float32(y2))
		case graphics.PathOpCubicTo:
			x1, y1 := m.apply(cmd.Args[0], cmd.Args[1])
			x2, y2 := m.apply(cmd.Args[2], cmd.Args[3])
			x3, y3 := m.apply(cmd.Args[4], cmd.Args[5])
			r.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case graphics.PathOpClose:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// xorMask folds src into dst with per-pixel antialiased XOR:
// out = a + b - 2ab. Coverage present in exactly one input survives.
func xorMask(dst, src *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(dst.AlphaAt(x, y).A)
			bb := uint32(src.AlphaAt(x, y).A)
			v := a + bb - (2*a*bb+127)/255
			if v > 255 {
				v = 255
			}
			dst.SetAlpha(x, y, colorAlpha(uint8(v)))
		}
	}
}

// intersectMask multiplies other into dst per pixel.
func intersectMask(dst, other *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(dst.AlphaAt(x, y).A)
			bb := uint32(other.AlphaAt(x, y).A)
			dst.SetAlpha(x, y, colorAlpha(uint8((a*bb+127)/255)))
		}
	}
}

// strokeWidthOrHairline returns the effective stroke width; zero-width
// strokes draw as one-pixel hairlines.
func strokeWidthOrHairline(width float64) float64 {
	if width <= 0 {
		return 1
	}
	return width
}

// inflateRRect grows (or shrinks, for negative d) a rounded rect by d on
// every edge, adjusting corner radii so the offset curve stays concentric.
func inflateRRect(rr graphics.RRect, d float64) graphics.RRect {
	grow := func(r graphics.Radius) graphics.Radius {
		x, y := r.X+d, r.Y+d
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		return graphics.Radius{X: x, Y: y}
	}
	return graphics.RRect{
		Rect:        rr.Rect.Inset(-d),
		TopLeft:     grow(rr.TopLeft),
		TopRight:    grow(rr.TopRight),
		BottomRight: grow(rr.BottomRight),
		BottomLeft:  grow(rr.BottomLeft),
	}
}

// rrectStrokePath returns the stroke outline of a rounded rect as the
// even-odd annulus between the outer and inner offset shapes. The offset
// curves are exact for rounded rects, unlike generic path stroking.
func rrectStrokePath(rr graphics.RRect, width float64) *graphics.Path {
	w := strokeWidthOrHairline(width)
	p := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	p.AddRRect(inflateRRect(rr, w*0.5))
	inner := inflateRRect(rr, -w*0.5)
	if !inner.Rect.IsEmpty() {
		p.AddRRect(inner)
	}
	return p
}

// circleStrokePath returns the annulus between two concentric circles.
func circleStrokePath(center graphics.Offset, radius, width float64) *graphics.Path {
	w := strokeWidthOrHairline(width)
	p := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	p.AddCircle(center, radius+w*0.5)
	if radius-w*0.5 > 0 {
		p.AddCircle(center, radius-w*0.5)
	}
	return p
}

// lineStrokePath returns the quad covering a stroked segment (butt caps).
func lineStrokePath(start, end graphics.Offset, width float64) *graphics.Path {
	w := strokeWidthOrHairline(width)
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	p := graphics.NewPath()
	if length == 0 {
		return p
	}
	// Perpendicular unit vector scaled to half-width.
	nx, ny := -dy/length*w*0.5, dx/length*w*0.5
	p.MoveTo(start.X+nx, start.Y+ny)
	p.LineTo(end.X+nx, end.Y+ny)
	p.LineTo(end.X-nx, end.Y-ny)
	p.LineTo(start.X-nx, start.Y-ny)
	p.Close()
	return p
}

// pathStrokePath approximates an arbitrary path stroke: curves are
// flattened, each segment becomes a quad, and round joins bridge interior
// vertices. Overlaps merge under the nonzero rule.
func pathStrokePath(path *graphics.Path, width float64) *graphics.Path {
	w := strokeWidthOrHairline(width)
	out := graphics.NewPath()
	for _, poly := range flattenPath(path) {
		for i := 0; i+1 < len(poly); i++ {
			seg := lineStrokePath(poly[i], poly[i+1], w)
			out.Commands = append(out.Commands, seg.Commands...)
			if i > 0 {
				out.AddCircle(poly[i], w*0.5)
			}
		}
	}
	return out
}

// flattenPath converts the path to polylines, one per subpath.
func flattenPath(path *graphics.Path) [][]graphics.Offset {
	var polys [][]graphics.Offset
	var cur []graphics.Offset
	var startPt graphics.Offset
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	last := func() graphics.Offset {
		if len(cur) == 0 {
			return graphics.Offset{}
		}
		return cur[len(cur)-1]
	}
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			startPt = graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			cur = append(cur, startPt)
		case graphics.PathOpLineTo:
			cur = append(cur, graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case graphics.PathOpQuadTo:
			p0 := last()
			p1 := graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			p2 := graphics.Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			steps := flattenSteps(p0, p1, p2)
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				cur = append(cur, quadPoint(p0, p1, p2, t))
			}
		case graphics.PathOpCubicTo:
			p0 := last()
			p1 := graphics.Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			p2 := graphics.Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			p3 := graphics.Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			steps := flattenSteps(p0, p1, p3)
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				cur = append(cur, cubicPoint(p0, p1, p2, p3, t))
			}
		case graphics.PathOpClose:
			if len(cur) > 0 {
				cur = append(cur, startPt)
			}
		}
	}
	flush()
	return polys
}

// flattenSteps picks a subdivision count from control-polygon extent.
func flattenSteps(a, b, c graphics.Offset) int {
	extent := math.Hypot(b.X-a.X, b.Y-a.Y) + math.Hypot(c.X-b.X, c.Y-b.Y)
	steps := int(math.Ceil(extent / 3))
	if steps < 4 {
		steps = 4
	}
	if steps > 64 {
		steps = 64
	}
	return steps
}

func quadPoint(p0, p1, p2 graphics.Offset, t float64) graphics.Offset {
	u := 1 - t
	return graphics.Offset{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func cubicPoint(p0, p1, p2, p3 graphics.Offset, t float64) graphics.Offset {
	u := 1 - t
	return graphics.Offset{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}
