package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start playing the platformer.

Controls:
  A/D, Left/Right  - Walk
  Space/W/Up       - Jump (hold for height)
  S/Down           - Duck (tall form)
  F/X              - Throw a fireball (fire form)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer star power, fuller coin blocks
  normal - The config as written
  hard   - One life, short star power, faster running

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --config ./my-level.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.platformer/platformer.log", "Log file (the terminal is busy with the game)")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	exitOnError("invalid difficulty", err)

	logFile, err := openLogFile(flagLogFile)
	exitOnError("cannot open log file", err)
	defer logFile.Close()

	logger, err := newLogger(logFile)
	exitOnError("cannot create logger", err)

	// Set config path, difficulty and logger before creation
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(preset)
	platformer.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	exitOnError("cannot create game", err)

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		store = nil
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher = startWatcher(logger)
	}

	logger.Info("starting", "difficulty", preset, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Watcher:    watcher,
		Logger:     logger,
		Difficulty: string(preset),
	})

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		logFile.Close()
		exitOnError("running game", runErr)
	}
}

// startWatcher watches the config file the game loaded. It returns nil when
// the game runs on the embedded default or the watch cannot start.
func startWatcher(logger *log.Logger) *config.Watcher {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch has no config file to watch; using built-in defaults")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		logger.Warn("config watch disabled", "path", path, "error", err)
		return nil
	}
	return w
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
}
