package gameevent

var (
	players = [...]string{"alice", "bob", "charlie", "diana", "eve", "frank"}
	levels  = [...]int{5, 12, 8, 3, 11, 7, 2, 10, 6, 4, 13, 9, 1, 14}
)

// Generator produces the events with IDs 1 through its total, in order.
// It is finite and not restartable; a new Generator is needed to replay the events.
// The zero value is an exhausted generator.
type Generator struct {
	total uint64
	next  uint64
}

// NewGenerator returns a generator of total events.
func NewGenerator(total uint64) *Generator {
	return &Generator{
		total: total,
		next:  1,
	}
}

// Next returns the next event, or false once all events have been produced.
func (g *Generator) Next() (Event, bool) {
	if g.next == 0 || g.next > g.total {
		return Event{}, false
	}

	id := g.next
	g.next++

	return NewEvent(id), true
}

// Remaining returns the number of events left to produce.
func (g *Generator) Remaining() uint64 {
	if g.next == 0 || g.next > g.total {
		return 0
	}

	return g.total - g.next + 1
}

// NewEvent returns the event with the given 1-based id.
func NewEvent(id uint64) Event {
	return Event{
		ID:     id,
		Player: PlayerFor(id),
		Level:  LevelFor(id),
		Action: ActionFor(id),
	}
}

// PlayerFor returns the player of the event with the given 1-based id.
// Players repeat in a fixed cycle of six.
func PlayerFor(id uint64) string {
	return players[(id-1)%uint64(len(players))]
}

// LevelFor returns the level of the event with the given 1-based id.
// Levels repeat in a fixed cycle of fourteen.
func LevelFor(id uint64) int {
	return levels[(id-1)%uint64(len(levels))]
}

// ActionFor returns the action of the event with the given 1-based id.
// The rules are checked in order and the first one that matches wins,
// so an id divisible by both 6 and 5 is a level-up.
func ActionFor(id uint64) Action {
	switch {
	case id == 1:
		return KilledMonster
	case id == 2:
		return FoundTreasure
	case id == 3:
		return LeveledUp
	case id%11 == 0:
		return FoundTreasure
	case id%6 == 0:
		return LeveledUp
	case id%5 == 0:
		return CompletedQuest
	default:
		return KilledMonster
	}
}
