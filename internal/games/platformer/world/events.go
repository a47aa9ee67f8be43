package world

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBlockBumped EventKind = iota
	EventBlockBroken
	EventItemReleased
	EventCoinPopped
	EventPowerUp
	EventFireballSpawned
	EventFireballExpired
	EventItemLost
	EventPlayerFell
	EventTransformDone
	EventStarExpired
)

var eventNames = [...]string{
	EventBlockBumped:     "block_bumped",
	EventBlockBroken:     "block_broken",
	EventItemReleased:    "item_released",
	EventCoinPopped:      "coin_popped",
	EventPowerUp:         "power_up",
	EventFireballSpawned: "fireball_spawned",
	EventFireballExpired: "fireball_expired",
	EventItemLost:        "item_lost",
	EventPlayerFell:      "player_fell",
	EventTransformDone:   "transform_done",
	EventStarExpired:     "star_expired",
}

// String returns the snake_case name of the event kind.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is one entry of the per-tick event log.
type Event struct {
	Kind  EventKind
	Index int      // Block index or fireball slot; -1 when not applicable
	Item  ItemType // Valid for item and power-up events
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
