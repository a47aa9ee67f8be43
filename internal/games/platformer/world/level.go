package world

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"
)

// Level is the static description a world is built from.
type Level struct {
	Blocks  []BlockTemplate
	Objects []physics.Rect

	// Top-left of the small player's draw rect.
	StartX, StartY float64
}

// DefaultLevel returns the built-in single-screen layout.
func DefaultLevel(screenW, screenH float64, tile int) Level {
	t := float64(tile)
	w, h := screenW, screenH
	row := h - 5*t

	lvl := Level{
		Blocks: []BlockTemplate{
			{X: t, Y: h - 3*t, State: BlockNotInteractive},
			{X: w/2 - 2*t, Y: row, State: BlockNotInteractive},
			{X: w/2 - t, Y: row, State: BlockFull, Item: ItemMushroom},
			{X: w / 2, Y: row, State: BlockFull, Item: ItemFireFlower},
			{X: w/2 + t, Y: row, State: BlockFull, Item: ItemCoin},
			{X: w/2 + 2*t, Y: row, State: BlockFull, Item: ItemStar},
		},
		StartX: w/2 - t,
		StartY: h - 3*t,
	}
	for i := range 6 {
		lvl.Objects = append(lvl.Objects, physics.Rect{
			X: float64(i) * 2 * t,
			Y: h - 2*t,
			W: 2 * t,
			H: 2 * t,
		})
	}
	return lvl
}

// LevelFromConfig builds a level from the config's level section, or the
// default layout when the section is absent.
func LevelFromConfig(cfg config.PlatformerConfig) (Level, error) {
	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)
	lvl := DefaultLevel(w, h, cfg.Screen.Tile)
	if cfg.Level == nil {
		return lvl, nil
	}

	lvl.Blocks = make([]BlockTemplate, 0, len(cfg.Level.Blocks))
	for i, bc := range cfg.Level.Blocks {
		state, err := ParseBlockState(bc.State)
		if err != nil {
			return Level{}, fmt.Errorf("level block %d: %w", i, err)
		}
		item, err := ParseItemType(bc.Item)
		if err != nil {
			return Level{}, fmt.Errorf("level block %d: %w", i, err)
		}
		lvl.Blocks = append(lvl.Blocks, BlockTemplate{X: bc.X, Y: bc.Y, State: state, Item: item})
	}

	lvl.Objects = make([]physics.Rect, 0, len(cfg.Level.Objects))
	for _, oc := range cfg.Level.Objects {
		lvl.Objects = append(lvl.Objects, physics.Rect{X: oc.X, Y: oc.Y, W: oc.W, H: oc.H})
	}
	return lvl, nil
}
