// Package shadowbox renders a rounded-corner container that draws a soft
// drop shadow behind its content, clips the content to rounded corners,
// and optionally strokes a rounded border on top.
//
// A Box owns no layout or child widgets: the host tells it the container
// size via Resize and hands it a child-draw callback each frame. Corner
// clipping uses an even-odd mask filled with a destination-out blend
// inside an off-screen layer, so it works on any Canvas with software
// compositing semantics, without a native anti-aliased clip-to-path.
package shadowbox

import (
	"github.com/go-drift/shade/pkg/graphics"
	"github.com/go-drift/shade/pkg/style"
)

// Box is the shadow container. It is a per-frame rendering component:
// construct it once, deliver size changes with Resize, then call Draw every
// frame. All methods must be called from the single rendering goroutine;
// the internal paint and path scratch state is not safe for concurrent use.
type Box struct {
	config  Config
	padding graphics.EdgeInsets
	geom    frameGeometry
	size    graphics.Size
	scratch *scratch
}

// New creates a Box from an already-resolved Config. Padding is computed
// immediately so the host can reserve space before the first layout.
func New(config Config) *Box {
	return &Box{
		config:  config,
		padding: ComputeInsets(config),
		scratch: newScratch(),
	}
}

// NewFromAttributes creates a Box from named style properties, converting
// lengths to physical pixels with the device density scale.
func NewFromAttributes(attrs style.Attributes, scale float64) (*Box, error) {
	config, err := ConfigFromAttributes(attrs, scale)
	if err != nil {
		return nil, err
	}
	return New(config), nil
}

// Config returns the active configuration.
func (b *Box) Config() Config {
	return b.config
}

// Padding returns the edge insets reserved for the shadow. The host must
// apply these as the container's own padding.
func (b *Box) Padding() graphics.EdgeInsets {
	return b.padding
}

// Resize must be called with the container's resolved size whenever it
// changes, before the next Draw. The first call transitions the Box out of
// the unresolved state in which Draw skips frames.
func (b *Box) Resize(width, height float64) {
	b.size = graphics.Size{Width: width, Height: height}
	b.geom.resolve(b.size, b.padding, b.config.BorderWidth)
}

// Reload replaces the configuration, recomputes padding, and refreshes the
// geometry if a size has already been delivered.
func (b *Box) Reload(config Config) {
	b.config = config
	b.padding = ComputeInsets(config)
	if b.geom.resolved {
		b.geom.resolve(b.size, b.padding, b.config.BorderWidth)
	}
}

// ContentRect returns the padded drawable area. The second result is false
// before the first Resize.
func (b *Box) ContentRect() (graphics.Rect, bool) {
	return b.geom.content, b.geom.resolved
}

// BorderRect returns the rectangle the border is stroked on. The second
// result is false before the first Resize or when the border width is zero.
func (b *Box) BorderRect() (graphics.Rect, bool) {
	return b.geom.border, b.geom.resolved && b.geom.hasBorder
}
