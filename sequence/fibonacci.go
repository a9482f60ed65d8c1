package sequence

import "math/big"

// Fibonacci generates the Fibonacci numbers 0, 1, 1, 2, 3, 5, ...
// Values are arbitrary-precision and never overflow.
type Fibonacci struct {
	a *big.Int
	b *big.Int
}

// NewFibonacci returns a generator positioned at the first Fibonacci number.
func NewFibonacci() *Fibonacci {
	return &Fibonacci{
		a: big.NewInt(0),
		b: big.NewInt(1),
	}
}

// Next returns the next Fibonacci number. It always returns true.
// The returned value is owned by the caller.
func (f *Fibonacci) Next() (*big.Int, bool) {
	out := new(big.Int).Set(f.a)

	sum := new(big.Int).Add(f.a, f.b)
	f.a, f.b = f.b, sum

	return out, true
}
