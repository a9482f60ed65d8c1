package sequence

import (
	"context"
	"strconv"
	"testing"

	"github.com/matryer/is"

	gostreams "github.com/deadlyengineer/gamestream"
)

func TestPrimes_First5(t *testing.T) {
	is := is.New(t)

	primes, err := gostreams.CollectFirst[uint64](context.Background(), NewPrimes(), 5)

	is.NoErr(err)
	is.Equal(primes, []uint64{2, 3, 5, 7, 11})
}

func TestPrimes_MatchSieve(t *testing.T) {
	is := is.New(t)

	const limit = 10_000

	composite := make([]bool, limit+1)
	want := []uint64{}

	for n := 2; n <= limit; n++ {
		if composite[n] {
			continue
		}

		want = append(want, uint64(n))

		for m := n * n; m <= limit; m += n {
			composite[m] = true
		}
	}

	result, err := gostreams.ReduceSlice(context.Background(), PrimesBelow(limit+1))

	is.NoErr(err)
	is.Equal(result, want)
}

func TestPrimes_StrictlyIncreasingWithoutDivisors(t *testing.T) {
	is := is.New(t)

	primes, err := gostreams.CollectFirst[uint64](context.Background(), NewPrimes(), 500)
	is.NoErr(err)

	for i, p := range primes {
		if i > 0 {
			is.True(p > primes[i-1])
		}

		for d := uint64(2); d*d <= p; d++ {
			is.True(p%d != 0)
		}
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		given uint64
		want  bool
	}{
		{given: 0, want: false},
		{given: 1, want: false},
		{given: 2, want: true},
		{given: 3, want: true},
		{given: 4, want: false},
		{given: 9, want: false},
		{given: 25, want: false},
		{given: 97, want: true},
		{given: 7919, want: true},
		{given: 7917, want: false},
	}

	for _, test := range tests {
		t.Run(strconv.FormatUint(test.given, 10), func(t *testing.T) {
			is := is.New(t)

			is.Equal(IsPrime(test.given), test.want)
		})
	}
}

func TestPrimesBelow_Count(t *testing.T) {
	tests := []struct {
		given uint64
		want  uint64
	}{
		{given: 0, want: 0},
		{given: 2, want: 0},
		{given: 3, want: 1},
		{given: 100, want: 25},
		{given: 1000, want: 168},
	}

	for _, test := range tests {
		t.Run(strconv.FormatUint(test.given, 10), func(t *testing.T) {
			is := is.New(t)

			result, err := gostreams.Count(context.Background(), PrimesBelow(test.given))

			is.NoErr(err)
			is.Equal(result, test.want)
		})
	}
}

func TestPrimesBelow_Reopen(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	primes := PrimesBelow(12)

	first, err := gostreams.ReduceSlice(ctx, primes)
	is.NoErr(err)

	second, err := gostreams.ReduceSlice(ctx, primes)
	is.NoErr(err)

	is.Equal(first, []uint64{2, 3, 5, 7, 11})
	is.Equal(second, first)
}
