package gameevent

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"

	gostreams "github.com/deadlyengineer/gamestream"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		given uint64
		want  Summary
	}{
		{
			given: 0,
			want:  Summary{},
		},
		{
			given: 1,
			want:  Summary{Processed: 1},
		},
		{
			given: 14,
			want:  Summary{Processed: 14, HighLevelCount: 5, TreasureCount: 2, LevelUpCount: 3},
		},
		{
			given: 30,
			want:  Summary{Processed: 30, HighLevelCount: 11, TreasureCount: 3, LevelUpCount: 6},
		},
		{
			given: 1000,
			want:  Summary{Processed: 1000, HighLevelCount: 357, TreasureCount: 91, LevelUpCount: 152},
		},
	}

	for _, test := range tests {
		t.Run(strconv.FormatUint(test.given, 10), func(t *testing.T) {
			is := is.New(t)

			result, err := Aggregate(context.Background(), NewGenerator(test.given))

			is.NoErr(err)
			is.Equal(result, test.want)
		})
	}
}

func TestAggregate_HighLevelMatchesCycle(t *testing.T) {
	is := is.New(t)

	const total = 1000

	want := uint64(0)
	for id := uint64(1); id <= total; id++ {
		if LevelFor(id) >= HighLevel {
			want++
		}
	}

	result, err := Aggregate(context.Background(), NewGenerator(total))

	is.NoErr(err)
	is.Equal(result.HighLevelCount, want)
}

func TestAggregate_Canceled(t *testing.T) {
	is := is.New(t)

	errStop := errors.New("stop")

	events := gostreams.Peek(gostreams.From[Event](NewGenerator(100)), func(_ context.Context, cancel context.CancelCauseFunc, elem Event, _ uint64) {
		if elem.ID == 10 {
			cancel(errStop)
		}
	})

	result, err := AggregateStream(context.Background(), events)

	is.True(errors.Is(err, errStop))
	is.Equal(result.Processed, uint64(9))
}

func TestAggregate_ConstantMemory(t *testing.T) {
	is := is.New(t)

	allocs := func(total uint64) float64 {
		return testing.AllocsPerRun(5, func() {
			_, _ = Aggregate(context.Background(), NewGenerator(total))
		})
	}

	is.Equal(allocs(10), allocs(1_000_000))
}

func BenchmarkAggregate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Aggregate(context.Background(), NewGenerator(10_000))
	}
}
