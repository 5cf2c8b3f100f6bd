package physics

// Side names the face of an obstacle (or the screen edge) that was struck.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// CollideCircleBox tests a circle against a box and classifies the struck
// side from the offset between the circle centre and the closest point on
// the box. Corner hits can be misclassified; a centre inside the box
// reports SideBottom.
func CollideCircleBox(center Vec2, radius float64, boxCenter Vec2, box Shape) Side {
	closest := AABBAt(boxCenter, box).ClosestPoint(center)
	offset := center.Sub(closest)
	if offset.LenSq() > radius*radius {
		return SideNone
	}

	if abs(offset.X) > abs(offset.Y) {
		if offset.X < 0 {
			return SideLeft
		}
		return SideRight
	}
	if offset.Y > 0 {
		return SideTop
	}
	return SideBottom
}

// ReflectFrom flips only the velocity component that points into the
// obstacle through side. A component already moving away is kept, so a
// second contact on the next frame does not reverse it again.
func ReflectFrom(vel Vec2, side Side) Vec2 {
	switch side {
	case SideLeft:
		if vel.X > 0 {
			vel.X = -vel.X
		}
	case SideRight:
		if vel.X < 0 {
			vel.X = -vel.X
		}
	case SideTop:
		if vel.Y < 0 {
			vel.Y = -vel.Y
		}
	case SideBottom:
		if vel.Y > 0 {
			vel.Y = -vel.Y
		}
	}
	return vel
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
