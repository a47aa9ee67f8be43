package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
	Long: `Print the default configuration, or validate a config file with --check.

Copy the output to ~/.platformer/configs/platformer.yaml to customize the game.

Examples:
  platformer config > ~/.platformer/configs/platformer.yaml
  platformer config --check ./my-level.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate the given config file and exit")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigCheck == "" {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	cfg, err := config.LoadFile(flagConfigCheck)
	exitOnError("config check failed", err)

	blocks, objects := "default", "default"
	if cfg.Level != nil {
		blocks = fmt.Sprint(len(cfg.Level.Blocks))
		objects = fmt.Sprint(len(cfg.Level.Objects))
	}
	fmt.Printf("%s: ok (%dx%d, tile %d, blocks %s, objects %s)\n",
		flagConfigCheck, cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Tile, blocks, objects)
}
