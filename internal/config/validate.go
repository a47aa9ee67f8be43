package config

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCoinsPerBlock is the capacity of a coin block's coin array.
const MaxCoinsPerBlock = 10

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c PlatformerConfig) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen", "size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Tile < 2 {
		fail("screen.tile", "must be at least 2, got %d", c.Screen.Tile)
	}
	if c.Screen.TargetFPS <= 0 {
		fail("screen.target_fps", "must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Physics.Gravity <= 0 {
		fail("physics.gravity", "must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.MaxGravity < c.Physics.Gravity {
		fail("physics.max_gravity", "must be at least gravity, got %g", c.Physics.MaxGravity)
	}
	if c.Physics.MaxDeltaTime <= 0 {
		fail("physics.max_delta_time", "must be positive, got %s", c.Physics.MaxDeltaTime)
	}
	if c.Player.Lives < 1 {
		fail("player.lives", "must be at least 1, got %d", c.Player.Lives)
	}
	if c.Player.Friction <= 0 || c.Player.Friction >= 1 {
		fail("player.friction", "must be in (0, 1), got %g", c.Player.Friction)
	}
	if c.Player.MaxJump >= 0 {
		fail("player.max_jump", "must be negative (upward), got %g", c.Player.MaxJump)
	}
	if c.Items.MaxCoins < 1 || c.Items.MaxCoins > MaxCoinsPerBlock {
		fail("items.max_coins", "must be in [1, %d], got %d", MaxCoinsPerBlock, c.Items.MaxCoins)
	}
	if c.Items.BlockSpeed <= 0 || c.Items.CoinSpeed <= 0 {
		fail("items", "block_speed and coin_speed must be positive")
	}
	if c.Level != nil {
		for i, b := range c.Level.Blocks {
			if _, ok := blockStates[strings.ToLower(b.State)]; !ok {
				fail(fmt.Sprintf("level.blocks[%d].state", i), "unknown state %q", b.State)
			}
			if b.Item != "" {
				if _, ok := itemNames[strings.ToLower(b.Item)]; !ok {
					fail(fmt.Sprintf("level.blocks[%d].item", i), "unknown item %q", b.Item)
				}
			}
		}
		for i, o := range c.Level.Objects {
			if o.W <= 0 || o.H <= 0 {
				fail(fmt.Sprintf("level.objects[%d]", i), "size must be positive")
			}
		}
	}

	return errors.Join(errs...)
}

var blockStates = map[string]struct{}{"brick": {}, "full": {}, "empty": {}}

var itemNames = map[string]struct{}{"coin": {}, "mushroom": {}, "fire_flower": {}, "star": {}}
