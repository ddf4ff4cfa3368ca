package raster_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-drift/shade/pkg/graphics"
	"github.com/go-drift/shade/pkg/raster"
)

func opaqueRed() graphics.Paint {
	p := graphics.DefaultPaint()
	p.Color = graphics.ColorRed
	return p
}

func TestDrawRectFillsPixels(t *testing.T) {
	canvas := raster.New(20, 20)
	canvas.DrawRect(graphics.RectFromLTWH(5, 5, 10, 10), opaqueRed())

	img := canvas.Image()
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected opaque red at center, got %+v", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("expected untouched pixel outside rect, got %+v", got)
	}
}

func TestTranslateAffectsDrawing(t *testing.T) {
	canvas := raster.New(20, 20)
	canvas.Save()
	canvas.Translate(10, 10)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), opaqueRed())
	canvas.Restore()

	img := canvas.Image()
	if got := img.RGBAAt(12, 12); got.A == 0 {
		t.Error("expected translated rect to cover (12,12)")
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Error("expected origin area untouched after translate")
	}
}

func TestDstOutErasesDestination(t *testing.T) {
	canvas := raster.New(20, 20)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 20, 20), opaqueRed())

	eraser := graphics.DefaultPaint()
	eraser.BlendMode = graphics.BlendModeDstOut
	canvas.DrawRect(graphics.RectFromLTWH(5, 5, 10, 10), eraser)

	img := canvas.Image()
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("expected erased center, got %+v", got)
	}
	if got := img.RGBAAt(1, 1); got.A != 255 {
		t.Errorf("expected border to survive erase, got %+v", got)
	}
}

func TestEvenOddAnnulusErasesOnlyCorners(t *testing.T) {
	canvas := raster.New(40, 40)

	// Outer rect plus nested rounded rect under even-odd: only the corner
	// bites get coverage.
	path := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	rect := graphics.RectFromLTWH(0, 0, 40, 40)
	path.AddRect(rect)
	path.AddRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(12)))
	canvas.DrawPath(path, opaqueRed())

	img := canvas.Image()
	if got := img.RGBAAt(1, 1); got.A == 0 {
		t.Error("expected coverage in the corner bite")
	}
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("expected no coverage at the center, got %+v", got)
	}
	if got := img.RGBAAt(20, 1); got.A != 0 {
		t.Errorf("expected no coverage at the edge midpoint, got %+v", got)
	}
}

func TestSaveLayerCompositesOnRestore(t *testing.T) {
	canvas := raster.New(20, 20)
	bounds := graphics.RectFromLTWH(0, 0, 20, 20)

	canvas.SaveLayer(bounds, nil)
	canvas.DrawRect(graphics.RectFromLTWH(5, 5, 10, 10), opaqueRed())
	if got := canvas.Image().RGBAAt(10, 10); got.A != 0 {
		t.Error("layer content should not reach the base image before Restore")
	}
	canvas.Restore()

	if got := canvas.Image().RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected composited red after Restore, got %+v", got)
	}
}

func TestSaveLayerAlpha(t *testing.T) {
	canvas := raster.New(10, 10)
	canvas.SaveLayerAlpha(graphics.RectFromLTWH(0, 0, 10, 10), 0.5)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 10, 10), opaqueRed())
	canvas.Restore()

	got := canvas.Image().RGBAAt(5, 5)
	if got.A < 120 || got.A > 135 {
		t.Errorf("expected roughly half alpha, got %d", got.A)
	}
}

func TestDstOutInsideLayerOnlyAffectsLayer(t *testing.T) {
	canvas := raster.New(20, 20)
	backdrop := graphics.DefaultPaint()
	backdrop.Color = graphics.ColorBlue
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 20, 20), backdrop)

	canvas.SaveLayer(graphics.RectFromLTWH(0, 0, 20, 20), nil)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 20, 20), opaqueRed())
	eraser := graphics.DefaultPaint()
	eraser.BlendMode = graphics.BlendModeDstOut
	canvas.DrawRect(graphics.RectFromLTWH(5, 5, 10, 10), eraser)
	canvas.Restore()

	// Erased layer pixels must reveal the backdrop, not transparency.
	if got := canvas.Image().RGBAAt(10, 10); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("expected backdrop blue through the erased hole, got %+v", got)
	}
	if got := canvas.Image().RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected layer red outside the hole, got %+v", got)
	}
}

func TestClipRectRestrictsDrawing(t *testing.T) {
	canvas := raster.New(20, 20)
	canvas.Save()
	canvas.ClipRect(graphics.RectFromLTWH(0, 0, 10, 10))
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 20, 20), opaqueRed())
	canvas.Restore()

	img := canvas.Image()
	if got := img.RGBAAt(5, 5); got.A == 0 {
		t.Error("expected drawing inside the clip")
	}
	if got := img.RGBAAt(15, 15); got.A != 0 {
		t.Errorf("expected nothing outside the clip, got %+v", got)
	}
	// Clip must not leak past Restore.
	canvas.DrawRect(graphics.RectFromLTWH(14, 14, 4, 4), opaqueRed())
	if got := img.RGBAAt(15, 15); got.A == 0 {
		t.Error("expected clip to be discarded by Restore")
	}
}

func TestStrokedRRectLeavesInteriorEmpty(t *testing.T) {
	canvas := raster.New(40, 40)
	stroke := graphics.DefaultPaint()
	stroke.Color = graphics.ColorRed
	stroke.Style = graphics.PaintStyleStroke
	stroke.StrokeWidth = 4
	rrect := graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(5, 5, 30, 30), graphics.CircularRadius(6))
	canvas.DrawRRect(rrect, stroke)

	img := canvas.Image()
	if got := img.RGBAAt(20, 5); got.A == 0 {
		t.Error("expected coverage on the stroke centerline")
	}
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("expected empty interior, got %+v", got)
	}
}

func TestShadowLayerDrawsBlurredSilhouette(t *testing.T) {
	canvas := raster.New(60, 60)
	paint := graphics.DefaultPaint()
	paint.Shadow = graphics.NewShadowLayer(6, 0, 8, graphics.ColorBlack)
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(15, 15, 30, 20), graphics.CircularRadius(4)), paint)

	img := canvas.Image()
	// Below the shape, inside the offset+blur reach.
	if got := img.RGBAAt(30, 40); got.A == 0 {
		t.Error("expected shadow alpha below the shape")
	}
	// The shape itself still fills with the paint color.
	if got := img.RGBAAt(30, 25); got.A != 255 {
		t.Errorf("expected opaque shape fill, got %+v", got)
	}
	// Far corner stays clean.
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("expected untouched far corner, got %+v", got)
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	render := func() []byte {
		canvas := raster.New(50, 50)
		canvas.Clear(graphics.RGB(240, 240, 240))
		paint := graphics.DefaultPaint()
		paint.Shadow = graphics.NewShadowLayer(8, 2, 3, graphics.RGBA8(0, 0, 0, 0x60))
		canvas.DrawRRect(graphics.RRectFromRectAndRadius(
			graphics.RectFromLTWH(10, 10, 30, 30), graphics.CircularRadius(6)), paint)
		stroke := graphics.DefaultPaint()
		stroke.Style = graphics.PaintStyleStroke
		stroke.StrokeWidth = 2
		stroke.Color = graphics.ColorBlue
		canvas.DrawRRect(graphics.RRectFromRectAndRadius(
			graphics.RectFromLTWH(12, 12, 26, 26), graphics.CircularRadius(5)), stroke)
		return canvas.Image().Pix
	}
	if !bytes.Equal(render(), render()) {
		t.Error("identical command sequences must produce byte-identical output")
	}
}
