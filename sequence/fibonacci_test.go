package sequence

import (
	"context"
	"math/big"
	"testing"

	"github.com/matryer/is"

	gostreams "github.com/deadlyengineer/gamestream"
)

func TestFibonacci_First10(t *testing.T) {
	is := is.New(t)

	values, err := gostreams.CollectFirst[*big.Int](context.Background(), NewFibonacci(), 10)
	is.NoErr(err)

	ints := make([]int64, len(values))
	for i, v := range values {
		ints[i] = v.Int64()
	}

	is.Equal(ints, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34})
}

func TestFibonacci_Recurrence(t *testing.T) {
	is := is.New(t)

	values, err := gostreams.CollectFirst[*big.Int](context.Background(), NewFibonacci(), 300)
	is.NoErr(err)

	is.Equal(values[0].Int64(), int64(0))
	is.Equal(values[1].Int64(), int64(1))

	for n := 2; n < len(values); n++ {
		sum := new(big.Int).Add(values[n-1], values[n-2])
		is.Equal(values[n].Cmp(sum), 0)
	}
}

func TestFibonacci_NoOverflow(t *testing.T) {
	is := is.New(t)

	fib := NewFibonacci()

	var value *big.Int
	for i := 0; i <= 100; i++ {
		value, _ = fib.Next()
	}

	is.Equal(value.String(), "354224848179261915075")
}

func TestFibonacci_ValuesAreOwnedByCaller(t *testing.T) {
	is := is.New(t)

	fib := NewFibonacci()

	first, _ := fib.Next()
	first.SetInt64(1000)

	second, _ := fib.Next()
	third, _ := fib.Next()

	is.Equal(second.Int64(), int64(1))
	is.Equal(third.Int64(), int64(1))
}

func TestFibonacci_ContinuesAcrossCollects(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	fib := NewFibonacci()

	_, err := gostreams.CollectFirst[*big.Int](ctx, fib, 5)
	is.NoErr(err)

	next, err := gostreams.CollectFirst[*big.Int](ctx, fib, 2)
	is.NoErr(err)

	is.Equal(next[0].Int64(), int64(5))
	is.Equal(next[1].Int64(), int64(8))
}
