package system

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Side names the face of box a that touches box b.
type Side uint8

const (
	SideNone Side = iota
	// SideTop means a rests on top of b.
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the side b reports when a reports s.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func Overlaps(a, b cp.BB) bool {
	return a.Intersects(b)
}

// Collide reports which side of a is in contact with b. When a crosses one of
// b's edges on both axes, the axis with the shallower penetration wins; ties
// resolve vertically so a body resting on a corner still lands.
//
// A box that overlaps without crossing any edge (one contains the other on
// both axes) reports SideNone.
func Collide(a, b cp.BB) Side {
	if !Overlaps(a, b) {
		return SideNone
	}

	xSide, xDepth := SideNone, 0.0
	switch {
	case a.L < b.L && a.R >= b.L && a.R < b.R:
		xSide, xDepth = SideLeft, a.R-b.L
	case a.L > b.L && a.L <= b.R && a.R > b.R:
		xSide, xDepth = SideRight, b.R-a.L
	}

	ySide, yDepth := SideNone, 0.0
	switch {
	case a.B < b.B && a.T >= b.B && a.T < b.T:
		ySide, yDepth = SideBottom, a.T-b.B
	case a.B > b.B && a.B <= b.T && a.T > b.T:
		ySide, yDepth = SideTop, b.T-a.B
	}

	switch {
	case xSide != SideNone && ySide != SideNone:
		if math.Abs(yDepth) <= math.Abs(xDepth) {
			return ySide
		}
		return xSide
	case xSide != SideNone:
		return xSide
	default:
		return ySide
	}
}
