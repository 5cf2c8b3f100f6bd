package pong

import (
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Visual characters for terminal rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

const (
	hudLine  = 24.0 // height of one HUD text line in world units
	helpLine = "W/S move  P pause  R restart  B menu"
)

// Scene describes the current frame.
func (g *Game) Scene() core.Scene {
	scene := core.Scene{
		Width:   g.cfg.Screen.Width,
		Height:  g.cfg.Screen.Height,
		Sprites: make([]core.Sprite, 0, 4),
	}

	// Net first so the ball draws over it
	scene.Sprites = append(scene.Sprites, core.Sprite{
		Kind:  core.ShapeRect,
		HalfH: g.bounds.HalfH - 2*hudLine,
		Color: core.ColorGray,
		Glyph: NetChar,
	})

	for _, e := range g.world.All() {
		if e.Is(world.RoleBall) {
			scene.Sprites = append(scene.Sprites, core.Sprite{
				Kind:   core.ShapeCircle,
				X:      e.Pos.X,
				Y:      e.Pos.Y,
				Radius: e.Shape.Radius,
				Color:  core.ColorWhite,
				Glyph:  BallChar,
			})
			continue
		}
		color := core.ColorCyan
		if e.Is(world.RoleOpponent) {
			color = core.ColorRed
		}
		scene.Sprites = append(scene.Sprites, core.Sprite{
			Kind:  core.ShapeRect,
			X:     e.Pos.X,
			Y:     e.Pos.Y,
			HalfW: e.Shape.HalfW,
			HalfH: e.Shape.HalfH,
			Color: color,
			Glyph: PaddleChar,
		})
	}

	left, top, bottom := -g.bounds.HalfW, g.bounds.HalfH, -g.bounds.HalfH
	scene.Labels = []core.Label{
		{Text: g.board.Player, X: left, Y: top, Color: core.ColorCyan},
		{Text: g.board.Opponent, X: g.bounds.HalfW / 2, Y: top, Color: core.ColorRed},
		{Text: helpLine, X: left, Y: bottom + hudLine, Color: core.ColorGray},
	}

	if g.paused {
		scene.Overlay = []string{"PAUSED", "", "P to resume  R to restart"}
	}

	return scene
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawScene(g.Scene())
}
