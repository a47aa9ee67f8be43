package world

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/physics"

// movePlayer runs the player dispatch for one axis with displacement d.
func (w *World) movePlayer(axis physics.Axis, d float64) {
	pl := &w.Player
	tile := w.params.Tile

	s := newSweep(pl.Hitbox, axis, d)
	if d != 0 || axis == physics.AxisY {
		for i := range w.Blocks[:w.BlockCount] {
			b := &w.Blocks[i]
			if !b.solid() || w.culled(b.Rect) {
				continue
			}
			s.test(b.Rect, tile, i)
		}
		for _, obj := range w.Objects[:w.ObjectCount] {
			if w.culled(obj) {
				continue
			}
			s.test(obj, w.params.halfStep(), -1)
		}
	}
	pl.Hitbox = s.result()
	hit := s.last

	if axis == physics.AxisX {
		if hit.hit {
			pl.Velocity.X = 0
		}
		w.pickupItems()
		return
	}

	rising := d < 0
	pl.OnSurface = false
	if hit.hit {
		pl.Velocity.Y = 0
		pl.GainingHeight = false
		switch {
		case hit.ground:
			pl.OnSurface = true
		case rising && hit.block >= 0:
			w.bumpBlock(hit.block)
		}
	}
	if pl.Velocity.Y != 0 {
		pl.OnSurface = false
	}
	if pl.OnSurface {
		pl.Jumping = false
		pl.GainingHeight = false
	}
	w.pickupItems()
}

// culled reports whether r lies more than one tile outside the screen.
func (w *World) culled(r physics.Rect) bool {
	m := w.params.tile()
	return r.Right() < -m || r.X > w.params.ScreenW+m ||
		r.Bottom() < -m || r.Y > w.params.ScreenH+m
}

// bumpBlock applies the reaction of a block hit from below.
func (w *World) bumpBlock(i int) {
	b := &w.Blocks[i]
	pl := &w.Player

	switch {
	case b.State == BlockNotInteractive && pl.Tall:
		b.shatter(w.params)
		w.emit(Event{Kind: EventBlockBroken, Index: i})
	case b.State == BlockNotInteractive:
		b.Hit = true
		w.emit(Event{Kind: EventBlockBumped, Index: i})
	case b.State == BlockFull && b.Item.Type != ItemCoin:
		b.Hit = true
		b.Item.Free = true
		b.setState(BlockEmpty)
		w.emit(Event{Kind: EventBlockBumped, Index: i})
		w.emit(Event{Kind: EventItemReleased, Index: i, Item: b.Item.Type})
	case b.State == BlockFull && b.CoinCount > 0:
		b.Hit = true
		b.CoinCount--
		b.launchCoin()
		b.Sprite = SpriteShiny
		if b.CoinCount == 0 {
			b.setState(BlockEmpty)
		}
		w.emit(Event{Kind: EventBlockBumped, Index: i})
		w.emit(Event{Kind: EventCoinPopped, Index: i, Item: ItemCoin})
	}
}

// pickupItems collects every free item the player's hitbox overlaps.
func (w *World) pickupItems() {
	pl := &w.Player
	for i := range w.Blocks[:w.BlockCount] {
		it := &w.Blocks[i].Item
		if !it.Pickup() || !pl.Hitbox.Intersects(it.Rect) {
			continue
		}
		it.Visible = false

		switch it.Type {
		case ItemMushroom:
			if !pl.Tall {
				pl.grow(w.params)
			}
		case ItemFireFlower:
			if !pl.FireForm {
				if !pl.Tall {
					pl.grow(w.params)
				}
				pl.FireForm = true
			}
		case ItemStar:
			pl.Invincible = true
			pl.StarLeft = w.params.StarTime
		}
		w.emit(Event{Kind: EventPowerUp, Index: i, Item: it.Type})
	}
}
