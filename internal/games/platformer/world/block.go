package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// Block is a tile-sized interactive block. Its content state and its bump
// cycle are independent: a coin block can bump many times while still Full.
type Block struct {
	Rect   physics.Rect // Collision and draw rect; Y moves during a bump
	InitY  float64      // Rest position
	State  BlockState
	Sprite BlockSprite
	Hit    bool // Bump in progress, rising phase
	Broken bool // One-way; the block no longer collides and only its shards draw

	Item      Item
	Coins     [MaxCoins]Coin
	MaxCoins  int
	CoinCount int

	Shards [ShardCount]Shard
}

// Coin is one scripted pop-up of a coin block.
type Coin struct {
	Rect     physics.Rect
	OnAir    bool
	WillFall bool // Past the apex, heading back to the block
}

// Shard is one quarter of a broken brick.
type Shard struct {
	Rect     physics.Rect
	Velocity physics.Velocity
	Active   bool
}

// BlockTemplate is the immutable description a block is built from.
type BlockTemplate struct {
	X, Y  float64
	State BlockState
	Item  ItemType // Ignored for BlockNotInteractive
}

func newBlock(t BlockTemplate, p Params) Block {
	tile := p.tile()
	b := Block{
		Rect:  physics.Rect{X: t.X, Y: t.Y, W: tile, H: tile},
		InitY: t.Y,
		State: t.State,
	}

	switch {
	case t.State == BlockNotInteractive:
		b.Sprite = SpriteBrick
	case t.State == BlockEmpty:
		b.Sprite = SpriteEmpty
	case t.Item == ItemCoin:
		b.Sprite = SpriteBrick
	default:
		b.Sprite = SpriteQuestion
	}

	if t.State != BlockNotInteractive {
		b.Item = Item{
			Rect:    b.Rect,
			Type:    t.Item,
			Visible: t.State == BlockFull,
		}
	}

	if t.State == BlockFull && t.Item == ItemCoin {
		b.MaxCoins = p.MaxCoins
		b.CoinCount = p.MaxCoins
		for i := range b.Coins[:b.MaxCoins] {
			b.Coins[i].Rect = physics.Rect{X: t.X + tile/4, Y: t.Y, W: tile / 2, H: tile}
		}
	}

	b.resetShards(tile)
	return b
}

// HasCoins reports whether the block is a coin block.
func (b *Block) HasCoins() bool {
	return b.MaxCoins > 0
}

// resetShards places the four shards on the block's quadrants.
func (b *Block) resetShards(tile float64) {
	half := tile / 2
	for i := range b.Shards {
		b.Shards[i] = Shard{Rect: physics.Rect{
			X: b.Rect.X + float64(i%2)*half,
			Y: b.InitY + float64(i/2)*half,
			W: half,
			H: half,
		}}
	}
}

// shatter breaks the block and launches its shards outward.
func (b *Block) shatter(p Params) {
	b.Broken = true
	b.Hit = false
	b.resetShards(p.tile())
	for i := range b.Shards {
		s := &b.Shards[i]
		s.Active = true
		s.Velocity.X = p.ItemSpeed
		if i%2 == 0 {
			s.Velocity.X = -p.ItemSpeed
		}
		s.Velocity.Y = -p.ItemJumpForce
		if i >= 2 {
			s.Velocity.Y = -p.ItemJumpForce / 2
		}
	}
}

// launchCoin starts the first coin that is not already in the air.
func (b *Block) launchCoin() bool {
	for i := range b.Coins[:b.MaxCoins] {
		c := &b.Coins[i]
		if !c.OnAir {
			c.OnAir = true
			c.WillFall = false
			c.Rect.Y = b.InitY
			return true
		}
	}
	return false
}

// updateBump advances the bump cycle by k nominal frames.
// A block at rest that is not hit is left untouched.
func (b *Block) updateBump(p Params, k float64) {
	if b.Broken {
		return
	}
	if b.Hit {
		top := b.InitY - p.tile()/4
		b.Rect.Y -= p.BlockSpeed * k
		if b.Rect.Y <= top {
			b.Rect.Y = top
			b.Hit = false
		}
		return
	}
	if b.Rect.Y != b.InitY {
		b.Rect.Y += p.BlockSpeed * k
		if b.Rect.Y >= b.InitY {
			b.Rect.Y = b.InitY
		}
	}
}

// updateCoins advances every coin in flight. A coin climbs to three tiles
// above the block, then falls back and resets.
func (b *Block) updateCoins(p Params, k float64) {
	apex := b.InitY - 3*p.tile()
	for i := range b.Coins[:b.MaxCoins] {
		c := &b.Coins[i]
		if !c.OnAir {
			continue
		}
		if !c.WillFall {
			c.Rect.Y -= p.CoinSpeed * k
			if c.Rect.Y <= apex {
				c.Rect.Y = apex
				c.WillFall = true
			}
			continue
		}
		c.Rect.Y += p.CoinSpeed * k
		if c.Rect.Y >= b.InitY {
			c.Rect.Y = b.InitY
			c.OnAir = false
			c.WillFall = false
		}
	}
}

// updateShards moves the shards ballistically until they leave the screen.
func (b *Block) updateShards(p Params, k float64) {
	for i := range b.Shards {
		s := &b.Shards[i]
		if !s.Active {
			continue
		}
		s.Velocity.Y = min(s.Velocity.Y+p.Gravity*k, p.MaxGravity)
		s.Rect = s.Rect.Offset(s.Velocity.X*k, s.Velocity.Y*k)
		if s.Rect.Y > p.ScreenH {
			s.Active = false
		}
	}
}

// Shattering reports whether any shard is still falling.
func (b *Block) Shattering() bool {
	for _, s := range b.Shards {
		if s.Active {
			return true
		}
	}
	return false
}
