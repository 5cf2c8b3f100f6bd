package breakout

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Visual characters for terminal rendering
const (
	BrickChar  = '▆'
	PaddleChar = '▀'
	BallChar   = '●'
)

const (
	hudLine    = 24.0 // height of one HUD text line in world units
	launchHint = "Press SPACE to launch"
	helpLine   = "A/D move  SPACE launch  P pause  R restart  B menu"
)

// Scene describes the current frame.
func (g *Game) Scene() core.Scene {
	scene := core.Scene{
		Width:   g.cfg.Screen.Width,
		Height:  g.cfg.Screen.Height,
		Sprites: make([]core.Sprite, 0, g.world.Len()),
	}

	for _, e := range g.world.All() {
		sp := core.Sprite{
			Kind:  core.ShapeRect,
			X:     e.Pos.X,
			Y:     e.Pos.Y,
			HalfW: e.Shape.HalfW,
			HalfH: e.Shape.HalfH,
			Color: core.ColorWhite,
		}
		switch {
		case e.Is(world.RoleBall):
			sp.Kind = core.ShapeCircle
			sp.Radius = e.Shape.Radius
			sp.Glyph = BallChar
		case e.Is(world.RoleBrick):
			sp.Color = g.colors[e.ID]
			sp.Glyph = BrickChar
		default:
			sp.Color = core.ColorCyan
			sp.Glyph = PaddleChar
		}
		scene.Sprites = append(scene.Sprites, sp)
	}

	left, top, bottom := -g.bounds.HalfW, g.bounds.HalfH, -g.bounds.HalfH
	scene.Labels = append(scene.Labels,
		core.Label{Text: fmt.Sprintf("Bricks: %d/%d", g.BricksLeft(), g.bricksTotal), X: left, Y: top},
		core.Label{Text: helpLine, X: left, Y: bottom + hudLine, Color: core.ColorGray},
	)
	if g.phase == PhaseStart {
		scene.Labels = append(scene.Labels, core.Label{
			Text:  launchHint,
			X:     -float64(len(launchHint)) * hudLine / 4,
			Y:     g.cfg.Paddle.Y + 4*hudLine,
			Color: core.ColorYellow,
		})
	}
	if g.BricksLeft() == 0 && g.bricksTotal > 0 {
		scene.Overlay = []string{"WALL CLEARED", "", "R to play again"}
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
