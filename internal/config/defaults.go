package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Screen: ScreenConfig{
			Width:     640,
			Height:    480,
			Tile:      64,
			TargetFPS: 60,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			MaxGravity:   20,
			MaxDeltaTime: 50 * time.Millisecond,
		},
		Player: PlayerConfig{
			MaxJump:   -15,
			MaxSpeed:  7,
			JumpForce: 2.5,
			Speed:     0.2,
			Friction:  0.85,
			Lives:     3,
		},
		Items: ItemsConfig{
			ItemSpeed:     2,
			ItemJumpForce: 10,
			BlockSpeed:    1.5,
			CoinSpeed:     4.5,
			MaxCoins:      10,
		},
		Fireballs: FireballConfig{
			Speed:   7,
			Gravity: 0.6,
		},
		Timers: TimersConfig{
			Transform: 2 * time.Second,
			Star:      20 * time.Second,
			Firing:    200 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			Coin:    200,
			PowerUp: 1000,
			Brick:   50,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
