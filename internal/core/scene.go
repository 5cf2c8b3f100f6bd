package core

import "math"

// ShapeKind selects how a Sprite is drawn.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Sprite is one drawable object in world units (origin at the screen centre,
// x to the right, y up).
type Sprite struct {
	Kind   ShapeKind
	X, Y   float64 // centre
	HalfW  float64 // rect half width
	HalfH  float64 // rect half height
	Radius float64 // circle radius
	Color  Color
	Glyph  rune // terminal glyph
}

// Label is a piece of HUD text anchored at a world position (top-left of the text).
type Label struct {
	Text  string
	X, Y  float64
	Color Color
}

// Scene is a frontend-agnostic description of one frame.
type Scene struct {
	Width, Height float64 // logical world size
	Sprites       []Sprite
	Labels        []Label
	Overlay       []string // centred message lines (pause, hints); empty when none
}

// Viewport maps world coordinates onto a cell or pixel grid.
type Viewport struct {
	worldW, worldH float64
	cols, rows     int
}

// NewViewport creates a viewport projecting a worldW x worldH area onto cols x rows.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
}

// ToCell converts a world point to a grid cell. Cells are clamped to the grid.
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.worldW <= 0 || v.worldH <= 0 || v.cols <= 0 || v.rows <= 0 {
		return 0, 0
	}
	cx := int(math.Floor((x + v.worldW/2) / v.worldW * float64(v.cols)))
	cy := int(math.Floor((v.worldH/2 - y) / v.worldH * float64(v.rows)))
	return Clamp(cx, 0, v.cols-1), Clamp(cy, 0, v.rows-1)
}

// ToScreen converts a world point to unclamped surface coordinates, for
// frontends that draw with sub-cell precision.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	if v.worldW <= 0 || v.worldH <= 0 {
		return 0, 0
	}
	return (x + v.worldW/2) / v.worldW * float64(v.cols), (v.worldH/2 - y) / v.worldH * float64(v.rows)
}

// Scale converts a world length along x to surface units.
func (v Viewport) Scale(d float64) float64 {
	if v.worldW <= 0 {
		return 0
	}
	return d / v.worldW * float64(v.cols)
}

// SpriteRect returns the cell rectangle covered by a sprite, at least one cell.
func (v Viewport) SpriteRect(s Sprite) Rect {
	hw, hh := s.HalfW, s.HalfH
	if s.Kind == ShapeCircle {
		hw, hh = s.Radius, s.Radius
	}
	x0, y0 := v.ToCell(s.X-hw, s.Y+hh)
	x1, y1 := v.ToCell(s.X+hw, s.Y-hh)
	return NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// DrawScene renders a scene into the screen buffer, scaling the world to fit.
func (s *Screen) DrawScene(scene Scene) {
	vp := NewViewport(scene.Width, scene.Height, s.width, s.height)

	for _, sp := range scene.Sprites {
		glyph := sp.Glyph
		if glyph == 0 {
			glyph = '█'
		}
		if sp.Kind == ShapeCircle {
			x, y := vp.ToCell(sp.X, sp.Y)
			s.SetColor(x, y, glyph, sp.Color)
			continue
		}
		s.DrawRect(vp.SpriteRect(sp), glyph, sp.Color)
	}

	for _, l := range scene.Labels {
		x, y := vp.ToCell(l.X, l.Y)
		s.DrawTextColor(x, y, l.Text, l.Color)
	}

	if len(scene.Overlay) > 0 {
		s.drawOverlay(scene.Overlay)
	}
}

// drawOverlay draws a boxed, centred message.
func (s *Screen) drawOverlay(lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := NewRect((s.width-boxW)/2, (s.height-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ', ColorDefault)
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		s.DrawText(x, box.Y+1+i, l)
	}
}
