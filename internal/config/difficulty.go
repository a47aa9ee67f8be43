package config

import (
	"fmt"
	"time"
)

// ParsePreset converts a CLI string to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Timers.Star = 30 * time.Second
		cfg.Items.MaxCoins = MaxCoinsPerBlock
	case DifficultyHard:
		cfg.Player.Lives = 1
		cfg.Timers.Star = 10 * time.Second
		cfg.Player.MaxSpeed *= 1.25
	}
}
