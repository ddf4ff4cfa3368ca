package graphics_test

import (
	"testing"

	"github.com/go-drift/shade/pkg/graphics"
)

func TestPathAddRect(t *testing.T) {
	p := graphics.NewPath()
	p.AddRect(graphics.Rect{Left: 0, Top: 0, Right: 10, Bottom: 20})
	// MoveTo + 3 LineTo + Close
	if len(p.Commands) != 5 {
		t.Fatalf("expected 5 commands, got %d", len(p.Commands))
	}
	if p.Commands[0].Op != graphics.PathOpMoveTo {
		t.Errorf("expected leading move_to, got %v", p.Commands[0].Op)
	}
	if p.Commands[4].Op != graphics.PathOpClose {
		t.Errorf("expected trailing close, got %v", p.Commands[4].Op)
	}
}

func TestPathAddRRectZeroRadiusHasNoCurves(t *testing.T) {
	p := graphics.NewPath()
	p.AddRRect(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, 50, 50), graphics.CircularRadius(0)))
	for _, cmd := range p.Commands {
		if cmd.Op == graphics.PathOpCubicTo || cmd.Op == graphics.PathOpQuadTo {
			t.Fatalf("zero-radius rounded rect should contain no curves, found %v", cmd.Op)
		}
	}
}

func TestPathAddRRectRoundedHasCurves(t *testing.T) {
	p := graphics.NewPath()
	p.AddRRect(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, 50, 50), graphics.CircularRadius(8)))
	curves := 0
	for _, cmd := range p.Commands {
		if cmd.Op == graphics.PathOpCubicTo {
			curves++
		}
	}
	if curves != 4 {
		t.Errorf("expected 4 corner curves, got %d", curves)
	}
}

func TestPathSubpaths(t *testing.T) {
	p := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	p.AddRect(graphics.RectFromLTWH(0, 0, 100, 100))
	p.AddRRect(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, 100, 100), graphics.CircularRadius(10)))

	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("expected 2 subpaths, got %d", len(subs))
	}
	for i, sp := range subs {
		if sp.FillRule != graphics.FillRuleEvenOdd {
			t.Errorf("subpath %d lost the even-odd fill rule", i)
		}
		if sp.Commands[0].Op != graphics.PathOpMoveTo {
			t.Errorf("subpath %d should start with move_to", i)
		}
	}
}

func TestPathClearKeepsFillRule(t *testing.T) {
	p := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	p.AddRect(graphics.RectFromLTWH(0, 0, 10, 10))
	p.Clear()
	if !p.IsEmpty() {
		t.Error("path should be empty after Clear")
	}
	if p.FillRule != graphics.FillRuleEvenOdd {
		t.Error("Clear should preserve the fill rule")
	}
}

func TestPathClone(t *testing.T) {
	p := graphics.NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	clone := p.Clone()
	clone.Commands[0].Args[0] = 99
	if p.Commands[0].Args[0] != 1 {
		t.Error("mutating a clone should not affect the original")
	}
}
