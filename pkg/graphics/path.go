package graphics

import "fmt"

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Nested shapes alternate between filled and unfilled, which makes
	// it possible to cut one shape out of another.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect/AddRRect/AddCircle shape helpers. A Path is reusable: Clear
// empties the command list while keeping the backing storage.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// kappa is the control-point distance factor for approximating a quarter
// circle with a single cubic bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// AddRect appends the rectangle as a closed subpath, clockwise.
func (p *Path) AddRect(rect Rect) {
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}

// AddRRect appends the rounded rectangle as a closed subpath, clockwise.
// Corner radii are clamped so opposing corners never overlap; a rounded
// rect with all-zero radii degrades to a plain rectangle subpath.
func (p *Path) AddRRect(rrect RRect) {
	rect := rrect.Rect
	w, h := rect.Width(), rect.Height()
	if w <= 0 || h <= 0 {
		return
	}
	limit := w * 0.5
	if h*0.5 < limit {
		limit = h * 0.5
	}
	clampR := func(r Radius) (float64, float64) {
		x, y := r.X, r.Y
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		if x > limit {
			x = limit
		}
		if y > limit {
			y = limit
		}
		return x, y
	}
	tlx, tly := clampR(rrect.TopLeft)
	trx, try := clampR(rrect.TopRight)
	brx, bry := clampR(rrect.BottomRight)
	blx, bly := clampR(rrect.BottomLeft)

	p.MoveTo(rect.Left+tlx, rect.Top)
	p.LineTo(rect.Right-trx, rect.Top)
	if trx > 0 || try > 0 {
		p.CubicTo(
			rect.Right-trx+trx*kappa, rect.Top,
			rect.Right, rect.Top+try-try*kappa,
			rect.Right, rect.Top+try,
		)
	}
	p.LineTo(rect.Right, rect.Bottom-bry)
	if brx > 0 || bry > 0 {
		p.CubicTo(
			rect.Right, rect.Bottom-bry+bry*kappa,
			rect.Right-brx+brx*kappa, rect.Bottom,
			rect.Right-brx, rect.Bottom,
		)
	}
	p.LineTo(rect.Left+blx, rect.Bottom)
	if blx > 0 || bly > 0 {
		p.CubicTo(
			rect.Left+blx-blx*kappa, rect.Bottom,
			rect.Left, rect.Bottom-bly+bly*kappa,
			rect.Left, rect.Bottom-bly,
		)
	}
	p.LineTo(rect.Left, rect.Top+tly)
	if tlx > 0 || tly > 0 {
		p.CubicTo(
			rect.Left, rect.Top+tly-tly*kappa,
			rect.Left+tlx-tlx*kappa, rect.Top,
			rect.Left+tlx, rect.Top,
		)
	}
	p.Close()
}

// AddCircle appends the circle as a closed subpath built from four cubics.
func (p *Path) AddCircle(center Offset, radius float64) {
	if radius <= 0 {
		return
	}
	k := radius * kappa
	p.MoveTo(center.X+radius, center.Y)
	p.CubicTo(center.X+radius, center.Y+k, center.X+k, center.Y+radius, center.X, center.Y+radius)
	p.CubicTo(center.X-k, center.Y+radius, center.X-radius, center.Y+k, center.X-radius, center.Y)
	p.CubicTo(center.X-radius, center.Y-k, center.X-k, center.Y-radius, center.X, center.Y-radius)
	p.CubicTo(center.X+k, center.Y-radius, center.X+radius, center.Y-k, center.X+radius, center.Y)
	p.Close()
}

// Subpaths splits the path at MoveTo boundaries. Each returned path shares
// the receiver's fill rule. Rasterizers use this to evaluate the even-odd
// rule one subpath at a time.
func (p *Path) Subpaths() []*Path {
	var out []*Path
	var current *Path
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpMoveTo || current == nil {
			current = NewPathWithFillRule(p.FillRule)
			out = append(out, current)
		}
		current.Commands = append(current.Commands, cmd)
	}
	return out
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path, keeping allocated storage.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}
