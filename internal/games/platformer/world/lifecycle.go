package world

// blockTransitions lists every state change a block may make.
// Self-transitions are always allowed and not listed.
var blockTransitions = map[BlockState][]BlockState{
	BlockFull: {BlockEmpty},
}

// CanTransition reports whether a block may move from one state to another.
func CanTransition(from, to BlockState) bool {
	if from == to {
		return true
	}
	for _, s := range blockTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// setState applies a legal transition and keeps the sprite in step.
// Illegal transitions are ignored.
func (b *Block) setState(to BlockState) bool {
	if !CanTransition(b.State, to) {
		return false
	}
	b.State = to
	if to == BlockEmpty {
		b.Sprite = SpriteEmpty
	}
	return true
}
