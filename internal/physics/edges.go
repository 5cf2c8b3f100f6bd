package physics

// EdgeMask selects which screen edges reflect a ball.
type EdgeMask uint8

const (
	EdgeLeft EdgeMask = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgesHorizontal = EdgeTop | EdgeBottom
	EdgesAll        = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has reports whether m includes every edge in e.
func (m EdgeMask) Has(e EdgeMask) bool {
	return m&e == e
}

// BounceCircle reflects a circle off the selected screen edges. Per axis,
// when the circle crosses an edge the velocity component is made to point
// back into the screen and the circle is moved so it lies Inset units
// inside. The returned side is the edge that was hit, the horizontal one
// if both axes were corrected.
func BounceCircle(pos, vel Vec2, radius float64, b Bounds, edges EdgeMask) (Vec2, Vec2, Side) {
	hitX, hitY := SideNone, SideNone

	if edges.Has(EdgeLeft) && pos.X-radius < -b.HalfW {
		pos.X = -b.HalfW + radius + Inset
		vel.X = abs(vel.X)
		hitX = SideLeft
	} else if edges.Has(EdgeRight) && pos.X+radius > b.HalfW {
		pos.X = b.HalfW - radius - Inset
		vel.X = -abs(vel.X)
		hitX = SideRight
	}

	if edges.Has(EdgeBottom) && pos.Y-radius < -b.HalfH {
		pos.Y = -b.HalfH + radius + Inset
		vel.Y = abs(vel.Y)
		hitY = SideBottom
	} else if edges.Has(EdgeTop) && pos.Y+radius > b.HalfH {
		pos.Y = b.HalfH - radius - Inset
		vel.Y = -abs(vel.Y)
		hitY = SideTop
	}

	if hitX != SideNone {
		return pos, vel, hitX
	}
	return pos, vel, hitY
}

// EscapedEdge reports the left or right edge a circle has crossed, or
// SideNone while it is still within the horizontal bounds.
func EscapedEdge(pos Vec2, radius float64, b Bounds) Side {
	switch {
	case pos.X-radius < -b.HalfW:
		return SideLeft
	case pos.X+radius > b.HalfW:
		return SideRight
	default:
		return SideNone
	}
}
