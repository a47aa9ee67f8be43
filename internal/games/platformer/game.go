// Package platformer adapts the world simulation to the registry Game
// interface: input mapping, real-time stepping, lives and score, and
// terminal rendering.
package platformer

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Minimum terminal size the renderer can draw the level in.
const (
	minScreenW = 40
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives world events at debug level. Silent until SetLogger.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new and existing games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the platformer on top of world.World.
type Game struct {
	world *world.World

	// Game state
	state     string
	score     int
	lives     int
	coins     int
	tickCount uint64

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig

	screenTooSmall bool
}

// New creates a new platformer instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads the config and builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a fresh world from an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.PlatformerConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	params := world.ParamsFromConfig(cfg)
	lvl, err := world.LevelFromConfig(cfg)
	if err != nil {
		logger.Warn("using default level", "error", err)
		lvl = world.DefaultLevel(params.ScreenW, params.ScreenH, params.Tile)
	}
	w, err := world.New(params, lvl)
	if err != nil {
		logger.Warn("using default level", "error", err)
		w, _ = world.New(params, world.DefaultLevel(params.ScreenW, params.ScreenH, params.Tile))
	}
	g.world = w

	g.state = StatePlaying
	g.score = 0
	g.coins = 0
	g.lives = cfg.Player.Lives
	g.tickCount = 0
	selectFrame(&g.world.Player, 0)

	logger.Debug("world reset",
		"blocks", w.BlockCount,
		"objects", w.ObjectCount,
		"lives", g.lives,
	)
}

// Resize adopts a new terminal size without resetting the world.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// ApplyConfig swaps tunables in place. The level and entity state are kept;
// a different level section takes effect on the next reset.
func (g *Game) ApplyConfig(cfg config.PlatformerConfig) {
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	if g.world != nil {
		g.world.SetParams(world.ParamsFromConfig(cfg))
	}
	logger.Info("config reloaded")
}

// Config returns the config in effect.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// World exposes the simulation for inspection.
func (g *Game) World() *world.World {
	return g.world
}

// Step advances the game by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.StepDelta(in, time.Second/time.Duration(rate))
}

// StepDelta advances the game by dt, clamped to the configured maximum.
func (g *Game) StepDelta(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.screenTooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.world.Tick(intentFromFrame(in), g.clampDelta(dt))

	events := g.world.Events()
	for _, e := range events {
		g.handleEvent(e)
	}
	selectFrame(&g.world.Player, g.tickCount)

	return core.StepResult{State: g.State(), Events: len(events)}
}

// clampDelta bounds a tick so the swept step still covers the displacement.
func (g *Game) clampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit := g.cfg.Physics.MaxDeltaTime; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// intentFromFrame maps platform actions to the world's intent.
func intentFromFrame(in core.InputFrame) world.Intent {
	return world.Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
		Duck:  in.Has(core.ActionDuck),
		Fire:  in.Has(core.ActionFire),
	}
}

// handleEvent applies scoring and lives, and logs the event.
func (g *Game) handleEvent(e world.Event) {
	switch e.Kind {
	case world.EventCoinPopped:
		g.coins++
		g.score += g.cfg.Scoring.Coin
	case world.EventPowerUp:
		g.score += g.cfg.Scoring.PowerUp
	case world.EventBlockBroken:
		g.score += g.cfg.Scoring.Brick
	case world.EventPlayerFell:
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			logger.Info("game over", "score", g.score, "ticks", g.tickCount)
		} else {
			g.world.RespawnPlayer()
		}
	}

	kv := []any{"kind", e.Kind, "tick", g.tickCount}
	if e.Index >= 0 {
		kv = append(kv, "index", e.Index)
	}
	switch e.Kind {
	case world.EventItemReleased, world.EventPowerUp, world.EventItemLost:
		kv = append(kv, "item", e.Item)
	}
	logger.Debug("event", kv...)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Coins returns the number of coins collected this run.
func (g *Game) Coins() int {
	return g.coins
}

// Ticks returns the number of simulated ticks this run.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// Register the game with the registry
func init() {
	registry.Register("platformer", "Platformer", func() registry.Game {
		return New()
	})
}
