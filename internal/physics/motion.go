package physics

// Inset is how far inside a boundary a corrected shape is placed.
const Inset = 1.0

// AxisInput resolves a pair of held keys into a velocity along one axis.
// Increase is checked first, so holding both keys favours it.
func AxisInput(increase, decrease bool, speed float64) float64 {
	if increase {
		return speed
	} else if decrease {
		return -speed
	}
	return 0
}

// Integrate advances pos by vel over dt seconds. There is no clamping and no
// sub-stepping; a large dt can carry a fast ball through a thin collider.
func Integrate(pos, vel Vec2, dt float64) Vec2 {
	return pos.Add(vel.Scale(dt))
}

// ClampBox keeps a shape inside bounds. On each axis where the shape's near
// edge crosses a boundary, the velocity along that axis is zeroed and the
// shape is snapped so that edge sits Inset units inside. It reports whether
// any correction was made.
func ClampBox(pos, vel Vec2, shape Shape, b Bounds) (Vec2, Vec2, bool) {
	e := shape.Extents()
	clamped := false

	switch {
	case pos.X-e.X < -b.HalfW:
		pos.X = -b.HalfW + e.X + Inset
		vel.X = 0
		clamped = true
	case pos.X+e.X > b.HalfW:
		pos.X = b.HalfW - e.X - Inset
		vel.X = 0
		clamped = true
	}

	switch {
	case pos.Y-e.Y < -b.HalfH:
		pos.Y = -b.HalfH + e.Y + Inset
		vel.Y = 0
		clamped = true
	case pos.Y+e.Y > b.HalfH:
		pos.Y = b.HalfH - e.Y - Inset
		vel.Y = 0
		clamped = true
	}

	return pos, vel, clamped
}
