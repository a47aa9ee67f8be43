// platformer is a terminal platformer with swept collision physics.
//
// Usage:
//
//	platformer list               - List available games
//	platformer play               - Play the platformer
//	platformer sim                - Run the simulation headless
//	platformer scores             - Show high scores
//	platformer config             - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// gameID is the game every command runs.
const gameID = "platformer"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump, bump and stomp in your terminal",
	Long: `Platformer is a single-screen platformer for the terminal.

Available commands:
  list     - Show all available games
  play     - Play the game
  sim      - Run the simulation without a terminal UI
  scores   - View high scores
  config   - Print the default configuration

Examples:
  platformer play
  platformer play --difficulty hard --watch
  platformer sim --ticks 600 --script ./demo.tengo
  platformer scores --interactive`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	logger.SetLevel(level)
	return logger, nil
}

// exitOnError prints err in the CLI's format and exits.
func exitOnError(format string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: "+format+": %v\n", err)
	os.Exit(1)
}
