package gostreams

import "context"

// Generator produces the elements of a stream, one per call to Next.
// Next returns false once the generator is exhausted; every later call must also return false.
// Each call to Next advances the generator's private cursor, so a generator is not restartable.
type Generator[T any] interface {
	Next() (T, bool)
}

// GeneratorFunc is an adapter to allow the use of ordinary functions as generators.
type GeneratorFunc[T any] func() (T, bool)

// ProducerFunc opens a generator for a stream.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) Generator[T]

// Next implements Generator.
func (f GeneratorFunc[T]) Next() (T, bool) {
	return f()
}

// Produce returns a producer that produces the elements of the given slices, in order.
// Each stream the producer is opened in starts over from the first element.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) Generator[T] {
		sliceIdx := 0
		elemIdx := 0

		return GeneratorFunc[T](func() (T, bool) {
			for sliceIdx < len(slices) {
				if elemIdx < len(slices[sliceIdx]) {
					elem := slices[sliceIdx][elemIdx]
					elemIdx++

					return elem, true
				}

				sliceIdx++
				elemIdx = 0
			}

			var zero T

			return zero, false
		})
	}
}

// From returns a producer that produces the elements of gen.
// The producer shares gen's cursor: opening it in several streams continues where the previous stream stopped.
func From[T any](gen Generator[T]) ProducerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) Generator[T] {
		return gen
	}
}

// exhausted returns a generator that never produces an element.
func exhausted[T any]() Generator[T] {
	return GeneratorFunc[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
