// Package world owns every entity of a single-screen level and advances them
// one tick at a time: intents, player dispatch, block and item lifecycle,
// projectiles. It is deterministic and never touches the terminal.
package world

import (
	"fmt"
	"strings"
)

// Capacities of the fixed entity arrays. No level needs more.
const (
	MaxBlocks    = 20
	MaxObjects   = 20
	MaxFireballs = 3
	MaxCoins     = 10
	ShardCount   = 4
)

// BlockState is the content axis of a block's lifecycle.
type BlockState int

const (
	BlockNotInteractive BlockState = iota // Plain brick, no content
	BlockFull                             // Holds an item or coins
	BlockEmpty                            // Content dispensed
)

// String returns the config name of the state.
func (s BlockState) String() string {
	switch s {
	case BlockNotInteractive:
		return "brick"
	case BlockFull:
		return "full"
	case BlockEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ParseBlockState converts a config name to a BlockState.
func ParseBlockState(s string) (BlockState, error) {
	switch strings.ToLower(s) {
	case "brick", "":
		return BlockNotInteractive, nil
	case "full":
		return BlockFull, nil
	case "empty":
		return BlockEmpty, nil
	}
	return 0, fmt.Errorf("world: unknown block state %q", s)
}

// ItemType tags the content of a block.
type ItemType int

const (
	ItemCoin ItemType = iota
	ItemMushroom
	ItemFireFlower
	ItemStar
)

// String returns the config name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemCoin:
		return "coin"
	case ItemMushroom:
		return "mushroom"
	case ItemFireFlower:
		return "fire_flower"
	case ItemStar:
		return "star"
	default:
		return "unknown"
	}
}

// ParseItemType converts a config name to an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(s) {
	case "coin", "":
		return ItemCoin, nil
	case "mushroom":
		return ItemMushroom, nil
	case "fire_flower":
		return ItemFireFlower, nil
	case "star":
		return ItemStar, nil
	}
	return 0, fmt.Errorf("world: unknown item type %q", s)
}

// BlockSprite selects how a block is drawn.
type BlockSprite int

const (
	SpriteBrick    BlockSprite = iota
	SpriteQuestion             // Untouched item block
	SpriteEmpty                // Dispensed
	SpriteShiny                // Coin block that has paid out at least once
)

// Intent is the per-tick input snapshot.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool // Held
	Duck  bool // Held
	Fire  bool // Held; a fireball is thrown on the press edge
}
