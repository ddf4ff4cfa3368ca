package shadowbox

import (
	"fmt"
	"strings"
)

// Side identifies one edge of the container.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideRight
	SideBottom
	SideLeft
)

// String returns a human-readable representation of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// SideSet is a set of container edges. Membership is tested with Has;
// combining sets is a union. The zero value is the empty set.
type SideSet uint8

// SidesAll contains all four edges, the default for shadow rendering.
const SidesAll = SideSet(SideTop | SideRight | SideBottom | SideLeft)

// Sides builds a set from individual edges.
func Sides(sides ...Side) SideSet {
	var s SideSet
	for _, side := range sides {
		s |= SideSet(side)
	}
	return s
}

// Has reports whether the edge is in the set.
func (s SideSet) Has(side Side) bool {
	return s&SideSet(side) != 0
}

// With returns the set including the edge.
func (s SideSet) With(side Side) SideSet {
	return s | SideSet(side)
}

// Without returns the set excluding the edge.
func (s SideSet) Without(side Side) SideSet {
	return s &^ SideSet(side)
}

// String returns the contained edges as "top|right|bottom|left" or "none".
func (s SideSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, side := range []Side{SideTop, SideRight, SideBottom, SideLeft} {
		if s.Has(side) {
			names = append(names, side.String())
		}
	}
	return strings.Join(names, "|")
}

// ParseSideSet converts side names ("top", "right", "bottom", "left",
// case-insensitive) into a set. A nil slice means the default: all four
// sides. An empty non-nil slice is the empty set.
func ParseSideSet(names []string) (SideSet, error) {
	if names == nil {
		return SidesAll, nil
	}
	var s SideSet
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "top":
			s = s.With(SideTop)
		case "right":
			s = s.With(SideRight)
		case "bottom":
			s = s.With(SideBottom)
		case "left":
			s = s.With(SideLeft)
		default:
			return 0, fmt.Errorf("unknown shadow side %q", name)
		}
	}
	return s, nil
}
