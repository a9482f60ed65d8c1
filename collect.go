package gostreams

import (
	"context"
	"errors"
	"fmt"
)

// ErrExhausted is the sentinel matched by an ExhaustedError.
var ErrExhausted = errors.New("generator exhausted")

// An ExhaustedError is returned by CollectFirst when a generator could not supply the requested number of elements.
type ExhaustedError struct {
	// Requested is the number of elements that were asked for.
	Requested uint64

	// Collected is the number of elements the generator produced before it was exhausted.
	Collected uint64
}

// CollectFirst pulls exactly count elements from gen and returns them in order.
// It advances gen's cursor by count and never pulls further, so gen can be used again for the following elements.
// If gen is exhausted before count elements were produced, it returns the elements collected so far
// together with an *ExhaustedError; a short result is never returned without an error.
func CollectFirst[T any](ctx context.Context, gen Generator[T], count uint64) ([]T, error) {
	result, err := ReduceSlice(ctx, Limit(From(gen), count))
	if err != nil {
		return result, err
	}

	if collected := uint64(len(result)); collected < count {
		return result, &ExhaustedError{
			Requested: count,
			Collected: collected,
		}
	}

	return result, nil
}

// CollectSlice returns an accumulator that appends elements to a slice.
// The slice grows with the stream; use it on bounded streams only.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that keeps, for each key, the value of the latest element with that key.
// A nil map is allocated on first use. Memory grows with the number of distinct keys, not with the stream.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc map[K]V) map[K]V {
		if acc == nil {
			acc = map[K]V{}
		}

		acc[key(ctx, cancel, elem, index)] = value(ctx, cancel, elem, index)

		return acc
	}
}

// CountGroup returns an accumulator that counts elements per key.
// A nil map is allocated on first use. Memory grows with the number of distinct keys, not with the stream.
func CountGroup[T any, K comparable](key MapperFunc[T, K]) AccumulatorFunc[T, map[K]uint64] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc map[K]uint64) map[K]uint64 {
		if acc == nil {
			acc = map[K]uint64{}
		}

		acc[key(ctx, cancel, elem, index)]++

		return acc
	}
}

// Error implements error.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generator exhausted: collected %d of %d elements", e.Collected, e.Requested)
}

// Unwrap returns ErrExhausted.
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}
