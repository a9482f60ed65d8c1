package sequence

import (
	"context"

	gostreams "github.com/deadlyengineer/gamestream"
)

// Primes generates the prime numbers in increasing order, starting at 2.
type Primes struct {
	candidate uint64
}

// NewPrimes returns a generator positioned at the first prime.
func NewPrimes() *Primes {
	return &Primes{candidate: 2}
}

// Next returns the next prime. It always returns true.
func (p *Primes) Next() (uint64, bool) {
	for {
		n := p.candidate
		p.candidate++

		if IsPrime(n) {
			return n, true
		}
	}
}

// IsPrime reports whether n is prime, by trial division with every d from 2 up to the square root of n.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}

	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// PrimesBelow returns a producer of the primes less than limit, in increasing order.
// Every stream it is opened in gets its own Primes generator. Once a prime reaches limit,
// the stream is short-circuited with gostreams.ErrShortCircuit, which terminals do not report as an error.
func PrimesBelow(limit uint64) gostreams.ProducerFunc[uint64] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) gostreams.Generator[uint64] {
		below := func(_ context.Context, cancel context.CancelCauseFunc, elem uint64, _ uint64) bool {
			if elem >= limit {
				cancel(gostreams.ErrShortCircuit)
				return false
			}

			return true
		}

		return gostreams.Filter(gostreams.From[uint64](NewPrimes()), below)(ctx, cancel)
	}
}
