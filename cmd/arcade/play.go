package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  W/S, Up/Down      - Move paddle (Pong)
  A/D, Left/Right   - Move paddle (Brick Breaker)
  Space             - Launch the ball (Brick Breaker)
  P/Esc             - Pause
  R                 - Restart
  B                 - Leave the game
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Slower ball and paddles (wider paddle in Brick Breaker)
  normal - Configured speeds
  hard   - Faster ball and paddles (narrower paddle in Brick Breaker)

Examples:
  arcade play pong
  arcade play breakout --difficulty easy
  arcade play pong --config ./my-pong.yaml
  arcade play breakout --log-level debug --log-file arcade.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// lookupGame creates a registered game or explains how to find one.
func lookupGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return registry.Create(gameID)
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := lookupGame(args[0])
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
