package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best scores and run history",
	Long: `Without a game, list the best score of every game. With a game,
show its top runs from the local history.

Examples:
  arcade scores
  arcade scores tetris
  arcade scores snake --limit 25
  arcade scores --browse
  arcade scores tetris --browse
  arcade scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and best score of the given game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			return errors.New("--clear needs a game")
		}
		if err := clearScores(store, args[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", args[0])
		return nil
	}

	if flagBrowse {
		rt := runtimeConfig()
		var gameID string
		if len(args) > 0 {
			gameID = args[0]
		}
		return tui.RunScoreboard(store, gameID, rt.ScreenW, rt.ScreenH)
	}

	if len(args) == 0 {
		return printBestScores(store)
	}
	return printHistory(store, args[0])
}

func clearScores(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	return store.ClearScores(gameID)
}

func printBestScores(store *storage.Store) error {
	best, err := store.BestScores()
	if err != nil {
		return err
	}

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-16s  %s\n", "Game", "Best")
	fmt.Printf("  %-16s  %s\n", "----", "----")
	for _, g := range registry.List() {
		fmt.Printf("  %-16s  %d\n", g.Title, best[g.ID])
	}
	return nil
}

func printHistory(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	var title string
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, run, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.Get(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
