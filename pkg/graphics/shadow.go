package graphics

// ShadowLayer describes a blurred drop shadow drawn behind a shape.
//
// Radius is the blur extent in pixels, Offset shifts the shadow relative
// to the shape. A zero radius still draws a hard-edged silhouette, which
// is usually invisible behind the shape itself.
type ShadowLayer struct {
	Color  Color
	Radius float64
	Offset Offset
}

// Sigma returns the Gaussian sigma for the blur mask.
// Returns 0 if Radius is not positive.
func (s ShadowLayer) Sigma() float64 {
	if s.Radius <= 0 {
		return 0
	}
	return s.Radius * 0.5
}

// NewShadowLayer creates a shadow layer from blur radius, offset, and color.
func NewShadowLayer(radius, dx, dy float64, color Color) *ShadowLayer {
	return &ShadowLayer{
		Color:  color,
		Radius: radius,
		Offset: Offset{X: dx, Y: dy},
	}
}
