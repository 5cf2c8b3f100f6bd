package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show scores and match history for a game",
	Long: `Display the top scores for the specified game and, for games
played against an opponent, the most recent matches.

Examples:
  arcade scores pong
  arcade scores pong --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	game, err := lookupGame(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return printScores(cmd.OutOrStdout(), store, game.ID(), game.Title(), flagScoresLimit)
}

// printScores writes the score table and match history of one game.
func printScores(out io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	matches, err := store.RecentMatches(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 && len(matches) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	if len(scores) > 0 {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "\nBest: %d\n", scores[0].Score)
	}

	if len(matches) == 0 {
		return nil
	}

	stats, err := store.GetMatchStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving match stats: %w", err)
	}

	fmt.Fprintf(out, "\nRecent matches (played %d, won %d, lost %d, drawn %d)\n\n",
		stats.Played, stats.Wins, stats.Losses, stats.Draws)
	fmt.Fprintf(out, "  %-16s  %-6s  %-7s  %-10s  %s\n", "Date", "Result", "Score", "Difficulty", "Seconds")
	fmt.Fprintf(out, "  %-16s  %-6s  %-7s  %-10s  %s\n", "----", "------", "-----", "----------", "-------")
	for _, m := range matches {
		fmt.Fprintf(out, "  %-16s  %-6s  %-7s  %-10s  %d\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Outcome(),
			fmt.Sprintf("%d-%d", m.PlayerScore, m.OpponentScore),
			m.Difficulty,
			m.Duration,
		)
	}
	return nil
}
