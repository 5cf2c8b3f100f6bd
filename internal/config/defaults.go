package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Screen: Screen{Width: 1280, Height: 720},
		Ball: PongBall{
			Radius: 8,
			Speed:  400,
		},
		Paddle: PongPaddle{
			Width:  15,
			Height: 100,
			Speed:  200,
			Pad:    10,
		},
		Serve: PongServe{
			Initial:       Direction{X: 1, Y: 1},
			AfterPlayer:   Direction{X: -1, Y: 1},
			AfterOpponent: Direction{X: 1, Y: -1},
		},
	}
}

// DefaultBreakoutConfig returns the default Brick Breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: Screen{Width: 1280, Height: 720},
		Ball: BreakoutBall{
			Radius: 8,
			Speed:  400,
			Launch: Direction{X: 1, Y: 1},
			Gap:    4,
		},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 20,
			Speed:  500,
			Y:      -300,
		},
		Bricks: BreakoutBricks{
			Width:  80,
			Height: 24,
			Gap:    6,
			Top:    320,
			Layout: []string{
				"RRRRRRRRRRRR",
				"OOOOOOOOOOOO",
				"YYYYYYYYYYYY",
				"GGGGGGGGGGGG",
				"BBBBBBBBBBBB",
				"CCCCCCCCCCCC",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
