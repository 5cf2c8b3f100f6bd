package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestViewportToCell(t *testing.T) {
	vp := NewViewport(1280, 720, 128, 36)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"origin is the centre cell", 0, 0, 64, 18},
		{"top-left corner", -640, 360, 0, 0},
		{"bottom-right clamps into grid", 640, -360, 127, 35},
		{"far outside clamps", 5000, -5000, 127, 35},
		{"y up maps to smaller rows", 0, 180, 64, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := vp.ToCell(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestViewportSpriteRectMinimumSize(t *testing.T) {
	vp := NewViewport(1280, 720, 80, 24)

	r := vp.SpriteRect(Sprite{Kind: ShapeCircle, Radius: 1})
	if r.W < 1 || r.H < 1 {
		t.Errorf("SpriteRect should cover at least one cell, got %dx%d", r.W, r.H)
	}

	wide := vp.SpriteRect(Sprite{Kind: ShapeRect, HalfW: 320, HalfH: 10})
	if wide.W < 39 || wide.W > 41 {
		t.Errorf("Half-screen-wide rect should span about 40 cells, got %d", wide.W)
	}
}

func TestViewportToScreen(t *testing.T) {
	vp := NewViewport(1280, 720, 1280, 720)

	x, y := vp.ToScreen(0, 0)
	if x != 640 || y != 360 {
		t.Errorf("ToScreen(0, 0) = (%v, %v), expected (640, 360)", x, y)
	}

	// Unclamped, unlike ToCell
	x, y = vp.ToScreen(700, -400)
	if x != 1340 || y != 760 {
		t.Errorf("ToScreen(700, -400) = (%v, %v), expected (1340, 760)", x, y)
	}

	half := NewViewport(1280, 720, 640, 360)
	if got := half.Scale(100); got != 50 {
		t.Errorf("Scale(100) = %v, expected 50", got)
	}
}
