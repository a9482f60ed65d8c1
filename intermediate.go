package gostreams

import (
	"context"

	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) Generator[U] {
		gen := prod(ctx, cancel)

		index := uint64(0)

		return GeneratorFunc[U](func() (U, bool) {
			var zero U

			if contextDone(ctx) {
				return zero, false
			}

			elem, ok := gen.Next()
			if !ok {
				return zero, false
			}

			outElem := mapp(ctx, cancel, elem, index)

			if contextDone(ctx) {
				return zero, false
			}

			index++

			return outElem, true
		})
	}
}

// Filter returns a producer that calls filter for each element produced by prod, and only produces elements for which
// filter returns true.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) Generator[T] {
		gen := prod(ctx, cancel)

		index := uint64(0)

		return GeneratorFunc[T](func() (T, bool) {
			var zero T

			for !contextDone(ctx) {
				elem, ok := gen.Next()
				if !ok {
					return zero, false
				}

				filterResult := filter(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return zero, false
				}

				index++

				if filterResult {
					return elem, true
				}
			}

			return zero, false
		})
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) Generator[T] {
		gen := prod(ctx, cancel)

		index := uint64(0)

		return GeneratorFunc[T](func() (T, bool) {
			var zero T

			if contextDone(ctx) {
				return zero, false
			}

			elem, ok := gen.Next()
			if !ok {
				return zero, false
			}

			peek(ctx, cancel, elem, index)

			if contextDone(ctx) {
				return zero, false
			}

			index++

			return elem, true
		})
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// Once max elements have been produced, prod is not pulled again.
func Limit[T any](prod ProducerFunc[T], max uint64) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) Generator[T] {
		if max == 0 {
			return exhausted[T]()
		}

		gen := prod(ctx, cancel)

		done := uint64(0)

		return GeneratorFunc[T](func() (T, bool) {
			var zero T

			if done == max || contextDone(ctx) {
				return zero, false
			}

			elem, ok := gen.Next()
			if !ok {
				return zero, false
			}

			done++

			return elem, true
		})
	}
}

// Sort returns a producer that consumes elements from prod, sorts them using sort, and produces them in sorted order.
// Sort buffers every element produced by prod, so prod must be finite.
func Sort[T any](prod ProducerFunc[T], sort LessFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) Generator[T] {
		gen := prod(ctx, cancel)

		var result []T

		sorted := false

		pos := 0

		return GeneratorFunc[T](func() (T, bool) {
			var zero T

			if !sorted {
				sorted = true

				for !contextDone(ctx) {
					elem, ok := gen.Next()
					if !ok {
						break
					}

					result = append(result, elem)
				}

				slices.SortFunc(result, func(a T, b T) bool {
					return sort(ctx, cancel, a, b)
				})
			}

			if pos >= len(result) || contextDone(ctx) {
				return zero, false
			}

			elem := result[pos]
			pos++

			return elem, true
		})
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}
