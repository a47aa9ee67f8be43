package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresInteractive bool
	flagScoresLimit       int
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top runs with score, coins, play time and difficulty.

Examples:
  platformer scores
  platformer scores --limit 25
  platformer scores --interactive
  platformer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	entry, err := registry.Lookup(gameID)
	exitOnError("unknown game", err)
	title := entry.Title

	store, err := storage.Open(flagDBPath)
	exitOnError("opening scores database", err)
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			store.Close()
			exitOnError("clearing scores", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, flagFPS, width, height); err != nil {
			store.Close()
			exitOnError("running scoreboard", err)
		}
		return
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		store.Close()
		exitOnError("retrieving scores", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Coins", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		mode := r.Difficulty
		if mode == "" {
			mode = "normal"
		}
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, r.Score, r.Coins, mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Coins: %d\n", stats.HighScore, stats.Runs, stats.TotalCoins)
	}
}
