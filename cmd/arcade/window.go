package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a 1280x720 window and play the specified game.

Controls are the same as in the terminal, but keys are read as held
rather than repeated:
  W/S, Up/Down      - Move paddle (Pong)
  A/D, Left/Right   - Move paddle (Brick Breaker)
  Space             - Launch the ball (Brick Breaker)
  P/Esc             - Pause
  R                 - Restart
  Q/B               - Quit

Examples:
  arcade window pong
  arcade window breakout --fps 120`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := lookupGame(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := window.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
