package graphics_test

import (
	"reflect"
	"testing"

	"github.com/go-drift/shade/pkg/graphics"
)

func TestPictureRecorderOpNames(t *testing.T) {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 100, Height: 100})

	canvas.Save()
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 50, 50), graphics.DefaultPaint())
	canvas.SaveLayer(graphics.RectFromLTWH(0, 0, 100, 100), nil)
	canvas.DrawPath(graphics.NewPath(), graphics.DefaultPaint())
	canvas.Restore()
	canvas.Restore()

	list := recorder.EndRecording()
	want := []string{"save", "drawRect", "saveLayer", "drawPath", "restore", "restore"}
	if got := list.OpNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected ops %v, got %v", want, got)
	}
	if list.Len() != 6 {
		t.Errorf("expected 6 ops, got %d", list.Len())
	}
}

func TestDisplayListReplay(t *testing.T) {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 40, Height: 40})
	canvas.Translate(5, 5)
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, 30, 30), graphics.CircularRadius(4)), graphics.DefaultPaint())
	list := recorder.EndRecording()

	var replay graphics.PictureRecorder
	target := replay.BeginRecording(list.Size())
	list.Paint(target)
	replayed := replay.EndRecording()

	if !reflect.DeepEqual(replayed.OpNames(), list.OpNames()) {
		t.Errorf("replay ops %v differ from original %v", replayed.OpNames(), list.OpNames())
	}
}

func TestRecorderIgnoresOpsAfterEnd(t *testing.T) {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 10, Height: 10})
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), graphics.DefaultPaint())
	list := recorder.EndRecording()

	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), graphics.DefaultPaint())
	if list.Len() != 1 {
		t.Errorf("expected 1 op, got %d", list.Len())
	}
}

func TestRecordedPathIsDeepCopied(t *testing.T) {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 10, Height: 10})

	path := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	path.AddRect(graphics.RectFromLTWH(0, 0, 5, 5))
	canvas.DrawPath(path, graphics.DefaultPaint())
	path.Clear()

	list := recorder.EndRecording()

	capture := &pathCapturingCanvas{}
	list.Paint(capture)
	if capture.path == nil {
		t.Fatal("expected a drawPath op to replay")
	}
	if len(capture.path.Commands) != 5 {
		t.Errorf("recorded path should survive clearing the original, got %d commands", len(capture.path.Commands))
	}
}

// pathCapturingCanvas records only the last path handed to DrawPath.
type pathCapturingCanvas struct {
	path *graphics.Path
}

func (c *pathCapturingCanvas) Save()                                               {}
func (c *pathCapturingCanvas) SaveLayer(graphics.Rect, *graphics.Paint)            {}
func (c *pathCapturingCanvas) SaveLayerAlpha(graphics.Rect, float64)               {}
func (c *pathCapturingCanvas) Restore()                                            {}
func (c *pathCapturingCanvas) Translate(float64, float64)                          {}
func (c *pathCapturingCanvas) Scale(float64, float64)                              {}
func (c *pathCapturingCanvas) Rotate(float64)                                      {}
func (c *pathCapturingCanvas) ClipRect(graphics.Rect)                              {}
func (c *pathCapturingCanvas) ClipRRect(graphics.RRect)                            {}
func (c *pathCapturingCanvas) ClipPath(*graphics.Path)                             {}
func (c *pathCapturingCanvas) Clear(graphics.Color)                                {}
func (c *pathCapturingCanvas) DrawRect(graphics.Rect, graphics.Paint)              {}
func (c *pathCapturingCanvas) DrawRRect(graphics.RRect, graphics.Paint)            {}
func (c *pathCapturingCanvas) DrawCircle(graphics.Offset, float64, graphics.Paint) {}
func (c *pathCapturingCanvas) DrawLine(graphics.Offset, graphics.Offset, graphics.Paint) {
}
func (c *pathCapturingCanvas) DrawPath(path *graphics.Path, _ graphics.Paint) { c.path = path }
func (c *pathCapturingCanvas) Size() graphics.Size                            { return graphics.Size{} }
