package world

import "testing"

func TestCanTransition(t *testing.T) {
	states := []BlockState{BlockNotInteractive, BlockFull, BlockEmpty}
	allowed := map[[2]BlockState]bool{
		{BlockFull, BlockEmpty}: true,
	}

	for _, from := range states {
		for _, to := range states {
			want := from == to || allowed[[2]BlockState{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%v, %v) = %v, expected %v", from, to, got, want)
			}
		}
	}
}

func TestSetStateIgnoresIllegal(t *testing.T) {
	p := DefaultParams()
	b := newBlock(BlockTemplate{State: BlockEmpty}, p)

	if b.setState(BlockFull) {
		t.Error("setState(full) from empty succeeded")
	}
	if b.State != BlockEmpty {
		t.Errorf("State = %v, expected empty", b.State)
	}
}

func TestParseNames(t *testing.T) {
	for _, s := range []BlockState{BlockNotInteractive, BlockFull, BlockEmpty} {
		got, err := ParseBlockState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseBlockState(%q) = %v, %v", s.String(), got, err)
		}
	}
	for _, it := range []ItemType{ItemCoin, ItemMushroom, ItemFireFlower, ItemStar} {
		got, err := ParseItemType(it.String())
		if err != nil || got != it {
			t.Errorf("ParseItemType(%q) = %v, %v", it.String(), got, err)
		}
	}
	if _, err := ParseItemType("cake"); err == nil {
		t.Error("ParseItemType(cake) expected error")
	}
}

func TestBumpCycleRestIsUntouched(t *testing.T) {
	p := DefaultParams()
	b := newBlock(BlockTemplate{X: 0, Y: 100, State: BlockNotInteractive}, p)

	for range 50 {
		b.updateBump(p, 1)
	}
	if b.Rect.Y != 100 {
		t.Errorf("resting block moved to %g", b.Rect.Y)
	}

	b.Hit = true
	low := b.Rect.Y
	for range 50 {
		b.updateBump(p, 1)
		low = min(low, b.Rect.Y)
	}
	if low != 100-float64(p.Tile)/4 {
		t.Errorf("bump apex = %g, expected %g", low, 100-float64(p.Tile)/4)
	}
	if b.Rect.Y != 100 || b.Hit {
		t.Errorf("block did not settle: y=%g hit=%v", b.Rect.Y, b.Hit)
	}
}

func TestEmergence(t *testing.T) {
	p := DefaultParams()
	b := newBlock(BlockTemplate{X: 100, Y: 200, State: BlockFull, Item: ItemStar}, p)
	b.Item.Free = true

	for range 100 {
		b.Item.emerge(&b, p, 0, 1)
	}

	if !b.Item.Emerged {
		t.Fatal("item never emerged")
	}
	if b.Item.Rect.Y != 200-float64(p.Tile) {
		t.Errorf("item y = %g, expected %g", b.Item.Rect.Y, 200-float64(p.Tile))
	}
	if b.Item.Velocity.X != p.ItemSpeed {
		t.Errorf("Velocity.X = %g, expected away from player %g", b.Item.Velocity.X, p.ItemSpeed)
	}

	flower := newBlock(BlockTemplate{X: 100, Y: 200, State: BlockFull, Item: ItemFireFlower}, p)
	flower.Item.Free = true
	for range 100 {
		flower.Item.emerge(&flower, p, 0, 1)
	}
	if flower.Item.Velocity.X != 0 || flower.Item.Moving() {
		t.Error("fire flower drifts after emerging")
	}
}
