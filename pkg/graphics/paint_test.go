package graphics_test

import (
	"testing"

	"github.com/go-drift/shade/pkg/graphics"
)

func TestPaintReset(t *testing.T) {
	p := graphics.Paint{
		Color:       graphics.ColorRed,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: 6,
		AntiAlias:   false,
		BlendMode:   graphics.BlendModeDstOut,
		Shadow:      graphics.NewShadowLayer(10, 0, 4, graphics.ColorBlack),
	}
	p.Reset(graphics.ColorWhite)

	if p.Color != graphics.ColorWhite {
		t.Errorf("expected white color after reset, got %08x", uint32(p.Color))
	}
	if p.Style != graphics.PaintStyleFill {
		t.Errorf("expected fill style after reset, got %v", p.Style)
	}
	if p.StrokeWidth != 0 {
		t.Errorf("expected zero stroke width after reset, got %v", p.StrokeWidth)
	}
	if !p.AntiAlias {
		t.Error("expected anti-alias on after reset")
	}
	if p.BlendMode != graphics.BlendModeSrcOver {
		t.Errorf("expected src_over blend after reset, got %v", p.BlendMode)
	}
	if p.Shadow != nil {
		t.Error("expected no shadow after reset")
	}
	if !p.IsNeutral() {
		t.Error("reset paint should report neutral")
	}
}

func TestDefaultPaintIsNeutral(t *testing.T) {
	p := graphics.DefaultPaint()
	if !p.IsNeutral() {
		t.Error("DefaultPaint should be neutral")
	}
	if p.Color != graphics.ColorWhite {
		t.Errorf("expected white default color, got %08x", uint32(p.Color))
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode graphics.BlendMode
		want string
	}{
		{graphics.BlendModeSrcOver, "src_over"},
		{graphics.BlendModeDstOut, "dst_out"},
		{graphics.BlendModeClear, "clear"},
		{graphics.BlendMode(99), "BlendMode(99)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := graphics.RGBA8(0x11, 0x22, 0x33, 0x80)
	r, g, b, a := c.RGBA8Components()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x80 {
		t.Errorf("unexpected components %02x %02x %02x %02x", r, g, b, a)
	}
	if got := c.WithAlpha8(0xFF); got != graphics.RGB(0x11, 0x22, 0x33) {
		t.Errorf("WithAlpha8 mismatch: %08x", uint32(got))
	}
	if graphics.ColorBlack.Alpha() != 1 {
		t.Error("black should be opaque")
	}
	if graphics.ColorTransparent.Alpha() != 0 {
		t.Error("transparent should have zero alpha")
	}
}
