package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// ConfigApplier is implemented by games that accept a reloaded config
// without a reset.
type ConfigApplier interface {
	ApplyConfig(cfg config.PlatformerConfig)
}

// Resizer is implemented by games that follow terminal resizes without a
// reset. Other games are reset on resize.
type Resizer interface {
	Resize(runtime core.RuntimeConfig)
}

// runReporter is implemented by games that report run details beyond the
// score.
type runReporter interface {
	Coins() int
	Ticks() uint64
}

// configMsg carries a reloaded config from the watcher.
type configMsg struct {
	cfg config.PlatformerConfig
}

// configErrMsg carries a failed reload from the watcher.
type configErrMsg struct {
	err error
}

// Options configures optional collaborators of the model.
type Options struct {
	Store      *storage.Store  // Run storage; nil disables saving
	Watcher    *config.Watcher // Config hot reload; nil disables it
	Logger     *log.Logger     // Diagnostics; nil discards
	Difficulty string          // Recorded with saved runs
	HoldWindow time.Duration   // Key hold window; zero uses the default
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger

	keys    *KeyMapper
	holds   *HoldTracker
	help    help.Model
	pending core.InputFrame // One-shot actions since the last tick

	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:  cfg,
		opts:    opts,
		logger:  logger,
		keys:    NewKeyMapper(DefaultGameKeyMap()),
		holds:   NewHoldTracker(opts.HoldWindow),
		help:    h,
		pending: core.NewInputFrame(),
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	return core.Max(h-1, 0)
}

// runtimeFor returns the runtime config the game sees for a terminal size.
func (m Model) runtimeFor(w, h int) core.RuntimeConfig {
	rc := m.config
	rc.ScreenW = w
	rc.ScreenH = playfieldHeight(h)
	return rc
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtimeFor(m.config.ScreenW, m.config.ScreenH))
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.opts.Watcher))
}

// waitForConfig blocks on the watcher's next message.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		if applier, ok := m.game.(ConfigApplier); ok {
			applier.ApplyConfig(msg.cfg)
		}
		return m, waitForConfig(m.opts.Watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.holds.Press(action, time.Now())
	case action == core.ActionRestart && !m.gameState.GameOver:
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	rc := m.runtimeFor(msg.Width, msg.Height)
	if r, ok := m.game.(Resizer); ok {
		r.Resize(rc)
	} else if !m.gameState.GameOver {
		// This resets the game
		m.game.Reset(rc)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(core.Max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := m.pending.Clone()
	m.holds.Apply(&frame, now)

	wasOver := m.gameState.GameOver
	result := registry.StepDelta(m.game, frame, dt)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.holds.Clear()
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear one-shot input for next frame
	m.pending.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Saving is best-effort.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Difficulty: m.opts.Difficulty,
	}
	if r, ok := m.game.(runReporter); ok {
		run.Coins = r.Coins()
		run.Ticks = r.Ticks()
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "error", err)
		return
	}
	m.logger.Info("run saved", "score", run.Score, "coins", run.Coins)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
