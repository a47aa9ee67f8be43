package world

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Params are the tunables the simulation reads every tick.
type Params struct {
	ScreenW   float64
	ScreenH   float64
	Tile      int
	TargetFPS float64

	Gravity    float64
	MaxGravity float64

	MaxJump   float64
	MaxSpeed  float64
	JumpForce float64
	Speed     float64
	Friction  float64

	ItemSpeed     float64
	ItemJumpForce float64
	BlockSpeed    float64
	CoinSpeed     float64
	MaxCoins      int

	FireballSpeed   float64
	FireballGravity float64

	TransformTime time.Duration
	StarTime      time.Duration
	FiringTime    time.Duration
}

// ParamsFromConfig flattens a loaded config into simulation parameters.
func ParamsFromConfig(cfg config.PlatformerConfig) Params {
	maxCoins := cfg.Items.MaxCoins
	if maxCoins > MaxCoins {
		maxCoins = MaxCoins
	}
	return Params{
		ScreenW:   float64(cfg.Screen.Width),
		ScreenH:   float64(cfg.Screen.Height),
		Tile:      cfg.Screen.Tile,
		TargetFPS: float64(cfg.Screen.TargetFPS),

		Gravity:    cfg.Physics.Gravity,
		MaxGravity: cfg.Physics.MaxGravity,

		MaxJump:   cfg.Player.MaxJump,
		MaxSpeed:  cfg.Player.MaxSpeed,
		JumpForce: cfg.Player.JumpForce,
		Speed:     cfg.Player.Speed,
		Friction:  cfg.Player.Friction,

		ItemSpeed:     cfg.Items.ItemSpeed,
		ItemJumpForce: cfg.Items.ItemJumpForce,
		BlockSpeed:    cfg.Items.BlockSpeed,
		CoinSpeed:     cfg.Items.CoinSpeed,
		MaxCoins:      maxCoins,

		FireballSpeed:   cfg.Fireballs.Speed,
		FireballGravity: cfg.Fireballs.Gravity,

		TransformTime: cfg.Timers.Transform,
		StarTime:      cfg.Timers.Star,
		FiringTime:    cfg.Timers.Firing,
	}
}

// DefaultParams returns the parameters of the built-in config.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultPlatformerConfig())
}

func (p Params) tile() float64 {
	return float64(p.Tile)
}

// halfStep is the CCD step for items, fireballs and the player against terrain.
func (p Params) halfStep() int {
	if p.Tile < 2 {
		return 1
	}
	return p.Tile / 2
}
