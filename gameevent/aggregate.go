package gameevent

import (
	"context"

	gostreams "github.com/deadlyengineer/gamestream"
)

var _ gostreams.Generator[Event] = (*Generator)(nil)

// HighLevel is the lowest level counted as high-level by the aggregator.
const HighLevel = 10

// Summary holds the running counters of an aggregation.
type Summary struct {
	Processed      uint64
	HighLevelCount uint64
	TreasureCount  uint64
	LevelUpCount   uint64
}

// Aggregate pulls gen to exhaustion and returns the summary of all events it produced.
// No event is retained after it has been counted, so memory use does not depend on the number of events.
// If ctx is canceled, it returns the summary so far, and the cause of the cancelation.
func Aggregate(ctx context.Context, gen gostreams.Generator[Event]) (Summary, error) {
	return AggregateStream(ctx, gostreams.From(gen))
}

// AggregateStream is like Aggregate, but consumes an arbitrary event stream,
// for example one that has been instrumented using gostreams.Peek.
func AggregateStream(ctx context.Context, prod gostreams.ProducerFunc[Event]) (Summary, error) {
	return gostreams.Reduce(ctx, prod, Summary{}, Accumulate)
}

// Accumulate folds event elem into summary acc.
func Accumulate(_ context.Context, _ context.CancelCauseFunc, elem Event, _ uint64, acc Summary) Summary {
	acc.Processed++

	if elem.Level >= HighLevel {
		acc.HighLevelCount++
	}

	switch elem.Action {
	case FoundTreasure:
		acc.TreasureCount++
	case LeveledUp:
		acc.LevelUpCount++
	}

	return acc
}
