package gameevent

import (
	"context"

	gostreams "github.com/deadlyengineer/gamestream"
)

var actions = [...]Action{KilledMonster, FoundTreasure, LeveledUp, CompletedQuest}

// Actions returns every action, in declaration order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions[:])

	return out
}

// Players returns the player cycle, in order.
func Players() []string {
	out := make([]string, len(players))
	copy(out, players[:])

	return out
}

// CountActions returns an accumulator that counts events per action.
// The map holds at most one entry per action.
func CountActions() gostreams.AccumulatorFunc[Event, map[Action]uint64] {
	return gostreams.CountGroup(gostreams.FuncMapper(func(elem Event) Action {
		return elem.Action
	}))
}

// LatestByPlayer returns an accumulator that keeps the most recent event of each player.
// The map holds at most one entry per player.
func LatestByPlayer() gostreams.AccumulatorFunc[Event, map[string]Event] {
	return gostreams.CollectMap(gostreams.FuncMapper(func(elem Event) string {
		return elem.Player
	}), gostreams.Identity[Event]())
}

// Leaderboard returns the events of latest, highest level first.
// Players on the same level are ordered by name.
func Leaderboard(ctx context.Context, latest map[string]Event) ([]Event, error) {
	events := make([]Event, 0, len(latest))
	for _, event := range latest {
		events = append(events, event)
	}

	return gostreams.ReduceSlice(ctx, gostreams.Sort(gostreams.Produce(events), byLevelDesc))
}

func byLevelDesc(_ context.Context, _ context.CancelCauseFunc, a Event, b Event) bool {
	if a.Level != b.Level {
		return a.Level > b.Level
	}

	return a.Player < b.Player
}
