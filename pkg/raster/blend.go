package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-drift/shade/pkg/graphics"
)

// premul is a premultiplied RGBA pixel with components in [0, 1].
type premul struct {
	r, g, b, a float64
}

// scale multiplies every component, keeping the pixel premultiplied.
func (p premul) scale(f float64) premul {
	return premul{r: p.r * f, g: p.g * f, b: p.b * f, a: p.a * f}
}

// premulColor converts an ARGB color to a premultiplied pixel.
func premulColor(c graphics.Color) premul {
	r, g, b, a := c.RGBAF()
	return premul{r: r * a, g: g * a, b: b * a, a: a}
}

// premulAt reads a pixel; Go's color.RGBA is already premultiplied.
func premulAt(img *image.RGBA, x, y int) premul {
	px := img.RGBAAt(x, y)
	return premul{
		r: float64(px.R) / 255,
		g: float64(px.G) / 255,
		b: float64(px.B) / 255,
		a: float64(px.A) / 255,
	}
}

// setPremul writes a pixel, clamping components into valid premultiplied
// range (no component may exceed alpha).
func setPremul(img *image.RGBA, x, y int, p premul) {
	a := clampUnit(p.a)
	img.SetRGBA(x, y, color.RGBA{
		R: unitToByte(math.Min(clampUnit(p.r), a)),
		G: unitToByte(math.Min(clampUnit(p.g), a)),
		B: unitToByte(math.Min(clampUnit(p.b), a)),
		A: unitToByte(a),
	})
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func colorAlpha(a uint8) color.Alpha {
	return color.Alpha{A: a}
}

// blendPremul composites premultiplied src over dst with the Porter-Duff
// operator. Out-of-range modes fall back to source-over.
func blendPremul(src, dst premul, mode graphics.BlendMode) premul {
	switch mode {
	case graphics.BlendModeClear:
		return premul{}
	case graphics.BlendModeSrc:
		return src
	case graphics.BlendModeDst:
		return dst
	case graphics.BlendModeSrcOver:
		return addPremul(src, dst.scale(1-src.a))
	case graphics.BlendModeDstOver:
		return addPremul(dst, src.scale(1-dst.a))
	case graphics.BlendModeSrcIn:
		return src.scale(dst.a)
	case graphics.BlendModeDstIn:
		return dst.scale(src.a)
	case graphics.BlendModeSrcOut:
		return src.scale(1 - dst.a)
	case graphics.BlendModeDstOut:
		return dst.scale(1 - src.a)
	case graphics.BlendModeSrcATop:
		return addPremul(src.scale(dst.a), dst.scale(1-src.a))
	case graphics.BlendModeDstATop:
		return addPremul(dst.scale(src.a), src.scale(1-dst.a))
	case graphics.BlendModeXor:
		return addPremul(src.scale(1-dst.a), dst.scale(1-src.a))
	case graphics.BlendModePlus:
		return premul{
			r: clampUnit(src.r + dst.r),
			g: clampUnit(src.g + dst.g),
			b: clampUnit(src.b + dst.b),
			a: clampUnit(src.a + dst.a),
		}
	default:
		return addPremul(src, dst.scale(1-src.a))
	}
}

func addPremul(a, b premul) premul {
	return premul{r: a.r + b.r, g: a.g + b.g, b: a.b + b.b, a: a.a + b.a}
}
