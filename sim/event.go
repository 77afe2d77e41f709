package sim

// EventKind identifies something that happened during a step
type EventKind int

const (
	EventBump EventKind = iota
	EventSpring
	EventTeleport
	EventCoin
	EventWall
	EventHole
	EventFinish
	EventGameOver
)

var eventNames = [...]string{
	EventBump:     "bump",
	EventSpring:   "spring",
	EventTeleport: "teleport",
	EventCoin:     "coin",
	EventWall:     "wall",
	EventHole:     "hole",
	EventFinish:   "finish",
	EventGameOver: "game_over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is emitted by a step for presentation layers (sound, haptics, HUD)
type Event struct {
	Kind EventKind
	X, Y float64
}
