package breakout

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
)

// BrickSpec is one brick parsed from a layout.
type BrickSpec struct {
	Row, Col int
	Color    core.Color
	Pos      physics.Vec2 // centre, world units
}

// brickColor maps a layout rune to a color.
// Characters:
//
//	'.' or ' ' = empty
//	'R' red, 'O' orange, 'Y' yellow, 'G' green, 'B' blue, 'C' cyan, 'M' magenta
//	anything else = white brick
func brickColor(ch rune) (core.Color, bool) {
	switch ch {
	case '.', ' ':
		return core.ColorDefault, false
	case 'R', 'r':
		return core.ColorRed, true
	case 'O', 'o':
		return core.ColorOrange, true
	case 'Y', 'y':
		return core.ColorYellow, true
	case 'G', 'g':
		return core.ColorGreen, true
	case 'B', 'b':
		return core.ColorBlue, true
	case 'C', 'c':
		return core.ColorCyan, true
	case 'M', 'm':
		return core.ColorMagenta, true
	default:
		return core.ColorWhite, true
	}
}

// ParseLayout turns the ASCII brick map into positioned bricks. The grid is
// centred horizontally; the first row's upper edge sits at bricks.top.
func ParseLayout(b config.BreakoutBricks) []BrickSpec {
	cols := b.Columns()
	if cols == 0 {
		return nil
	}

	gridW := float64(cols)*b.Width + float64(cols-1)*b.Gap
	left := -gridW / 2

	var out []BrickSpec
	for row, line := range b.Layout {
		col := 0
		for _, ch := range line {
			if color, ok := brickColor(ch); ok {
				out = append(out, BrickSpec{
					Row:   row,
					Col:   col,
					Color: color,
					Pos: physics.V(
						left+float64(col)*(b.Width+b.Gap)+b.Width/2,
						b.Top-float64(row)*(b.Height+b.Gap)-b.Height/2,
					),
				})
			}
			col++
		}
	}
	return out
}
