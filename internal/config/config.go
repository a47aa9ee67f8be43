// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the platformer.
package config

import "time"

// PlatformerConfig contains every tunable of the simulation.
type PlatformerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Items     ItemsConfig    `yaml:"items"`
	Fireballs FireballConfig `yaml:"fireballs"`
	Timers    TimersConfig   `yaml:"timers"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Level     *LevelConfig   `yaml:"level,omitempty"` // nil means the built-in layout
}

// ScreenConfig defines the logical world size in pixels.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Tile      int `yaml:"tile"`       // Edge of one tile; also the player CCD step
	TargetFPS int `yaml:"target_fps"` // Rate velocities are expressed against
}

// PhysicsConfig defines world-wide physics parameters.
type PhysicsConfig struct {
	Gravity      float64       `yaml:"gravity"`        // Added to vy every tick
	MaxGravity   float64       `yaml:"max_gravity"`    // Terminal fall speed
	MaxDeltaTime time.Duration `yaml:"max_delta_time"` // Longest tick the simulation accepts
}

// PlayerConfig defines movement parameters for the player.
type PlayerConfig struct {
	MaxJump   float64 `yaml:"max_jump"`   // Upward speed at which a held jump stops gaining height
	MaxSpeed  float64 `yaml:"max_speed"`  // Walking speed cap
	JumpForce float64 `yaml:"jump_force"` // Upward impulse per tick while gaining height
	Speed     float64 `yaml:"speed"`      // Walking acceleration per tick
	Friction  float64 `yaml:"friction"`   // Multiplier applied when slowing down
	Lives     int     `yaml:"lives"`
}

// ItemsConfig defines block and item animation parameters.
type ItemsConfig struct {
	ItemSpeed     float64 `yaml:"item_speed"`      // Horizontal drift of mushrooms and stars
	ItemJumpForce float64 `yaml:"item_jump_force"` // Upward speed of a star hop
	BlockSpeed    float64 `yaml:"block_speed"`     // Bump and emergence speed
	CoinSpeed     float64 `yaml:"coin_speed"`      // Pop-up speed of coins
	MaxCoins      int     `yaml:"max_coins"`       // Coins held by a coin block
}

// FireballConfig defines projectile parameters.
type FireballConfig struct {
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`
}

// TimersConfig defines the durations of timed player states.
type TimersConfig struct {
	Transform time.Duration `yaml:"transform"`
	Star      time.Duration `yaml:"star"`
	Firing    time.Duration `yaml:"firing"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Coin    int `yaml:"coin"`
	PowerUp int `yaml:"power_up"`
	Brick   int `yaml:"brick"`
}

// LevelConfig describes a single-screen level in world pixels.
type LevelConfig struct {
	Blocks  []BlockConfig  `yaml:"blocks"`
	Objects []ObjectConfig `yaml:"objects"`
}

// BlockConfig is one block template.
type BlockConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	State string  `yaml:"state"` // "brick", "full" or "empty"
	Item  string  `yaml:"item"`  // "coin", "mushroom", "fire_flower" or "star"
}

// ObjectConfig is one static terrain rectangle.
type ObjectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
