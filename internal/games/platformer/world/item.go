package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// Item is the content of a Full block. It sits inside the block until
// released, rises out of it, then moves under its own physics.
type Item struct {
	Rect     physics.Rect
	Velocity physics.Velocity
	Type     ItemType
	Free     bool // One-way; set when the parent block is hit from below
	Visible  bool // Cleared on pickup or when the item leaves the screen
	Emerged  bool // Finished rising out of the block
}

// Pickup reports whether the player can collect the item right now.
func (it *Item) Pickup() bool {
	return it.Free && it.Visible && it.Type != ItemCoin
}

// Moving reports whether the item runs its own collision dispatch.
// Fire flowers stay where they emerged.
func (it *Item) Moving() bool {
	return it.Free && it.Visible && it.Emerged &&
		it.Type != ItemFireFlower && it.Type != ItemCoin
}

// emerge raises a released item out of its block by k nominal frames.
// Once clear, drifting items head away from the player.
func (it *Item) emerge(b *Block, p Params, playerCenter float64, k float64) bool {
	if !it.Free || it.Emerged || it.Type == ItemCoin {
		return false
	}
	top := b.InitY - p.tile()
	it.Rect.Y -= p.BlockSpeed * k
	if it.Rect.Y > top {
		return false
	}
	it.Rect.Y = top
	it.Emerged = true

	if it.Type == ItemMushroom || it.Type == ItemStar {
		it.Velocity.X = p.ItemSpeed
		if playerCenter > it.Rect.X+it.Rect.W/2 {
			it.Velocity.X = -p.ItemSpeed
		}
	}
	return true
}
