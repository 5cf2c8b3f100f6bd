package physics

// ShapeKind tells circles from boxes.
type ShapeKind uint8

const (
	KindBox ShapeKind = iota
	KindCircle
)

// Shape is a collision proxy: a circle of Radius or an axis-aligned box
// with half extents HalfW and HalfH.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	HalfW  float64
	HalfH  float64
}

// Circle returns a circle shape.
func Circle(r float64) Shape {
	return Shape{Kind: KindCircle, Radius: r}
}

// Box returns an axis-aligned box shape from its half extents.
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: KindBox, HalfW: halfW, HalfH: halfH}
}

// Extents returns the half width and half height of the shape's bounding box.
func (s Shape) Extents() Vec2 {
	if s.Kind == KindCircle {
		return Vec2{s.Radius, s.Radius}
	}
	return Vec2{s.HalfW, s.HalfH}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec2
}

// AABBAt returns the bounding box of shape centred at center.
func AABBAt(center Vec2, shape Shape) AABB {
	e := shape.Extents()
	return AABB{Min: center.Sub(e), Max: center.Add(e)}
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Bounds is the playfield, centred on the origin.
type Bounds struct {
	HalfW, HalfH float64
}

// NewBounds returns the bounds of a w x h playfield.
func NewBounds(w, h float64) Bounds {
	return Bounds{HalfW: w / 2, HalfH: h / 2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
