// Package gameevent provides a finite, lazily generated stream of synthetic game events,
// and a streaming aggregator that summarizes such a stream in constant memory.
package gameevent

import "fmt"

// Action is what a player did in an Event.
type Action int

const (
	KilledMonster Action = iota + 1
	FoundTreasure
	LeveledUp
	CompletedQuest
)

// Event is a single game event. Events are immutable once produced.
type Event struct {
	// ID is the 1-based position of the event in its stream.
	ID uint64

	Player string
	Level  int
	Action Action
}

// String returns the human-readable name of a.
func (a Action) String() string {
	switch a {
	case KilledMonster:
		return "killed monster"
	case FoundTreasure:
		return "found treasure"
	case LeveledUp:
		return "leveled up"
	case CompletedQuest:
		return "completed quest"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
