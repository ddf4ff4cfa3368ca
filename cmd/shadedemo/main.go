// Package main renders a demo shadow container to a PNG using the software
// rasterizer. It is the quickest way to eyeball a style sheet:
//
//	shadedemo -style card.yaml -width 240 -height 160 -o card.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/go-drift/shade/pkg/graphics"
	"github.com/go-drift/shade/pkg/raster"
	"github.com/go-drift/shade/pkg/shadowbox"
	"github.com/go-drift/shade/pkg/style"
)

func main() {
	stylePath := flag.String("style", "", "YAML style sheet (defaults apply if omitted or missing)")
	out := flag.String("o", "shadedemo.png", "output PNG path")
	width := flag.Int("width", 240, "container width in pixels")
	height := flag.Int("height", 160, "container height in pixels")
	scale := flag.Float64("scale", 1, "device density scale for style lengths")
	flag.Parse()

	if err := run(*stylePath, *out, *width, *height, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "shadedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(stylePath, out string, width, height int, scale float64) error {
	attrs := demoAttributes()
	if stylePath != "" {
		loaded, err := style.Load(stylePath)
		if err != nil {
			return err
		}
		attrs = loaded
	}

	box, err := shadowbox.NewFromAttributes(attrs, scale)
	if err != nil {
		return err
	}
	box.Resize(float64(width), float64(height))

	canvas := raster.New(width, height)
	canvas.Clear(graphics.RGB(0xF2, 0xF2, 0xF7))
	box.Draw(canvas, drawSampleContent(box))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}
	return nil
}

// demoAttributes is the style used when no sheet is given: a soft dark
// shadow, rounded corners, and a thin border.
func demoAttributes() style.Attributes {
	attrs := style.DefaultAttributes()
	attrs.ShadowColor = "#59000000"
	attrs.ShadowWidth = 12
	attrs.Dy = 4
	attrs.CornerRadius = 14
	attrs.BorderColor = "#FFD0D0D8"
	attrs.BorderWidth = 2
	return attrs
}

// drawSampleContent paints a card body that makes the corner clipping
// visible: a solid fill to the content rect's square edges plus a few
// accent shapes.
func drawSampleContent(box *shadowbox.Box) func(graphics.Canvas) {
	return func(canvas graphics.Canvas) {
		content, ok := box.ContentRect()
		if !ok {
			return
		}
		fill := graphics.DefaultPaint()
		canvas.DrawRect(content, fill)

		accent := graphics.DefaultPaint()
		accent.Color = graphics.RGB(0x4C, 0x8B, 0xF5)
		canvas.DrawCircle(graphics.Offset{
			X: content.Left + 28,
			Y: content.Top + 28,
		}, 16, accent)

		line := graphics.DefaultPaint()
		line.Color = graphics.RGB(0xD8, 0xD8, 0xDE)
		line.StrokeWidth = 6
		for i := 0; i < 3; i++ {
			y := content.Top + 24 + float64(i)*16
			canvas.DrawLine(
				graphics.Offset{X: content.Left + 56, Y: y},
				graphics.Offset{X: content.Right - 20, Y: y},
				line,
			)
		}
	}
}
