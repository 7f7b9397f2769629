package arrayops

import "math/rand/v2"

// Rand is the minimal random source consulted by [RandomFrom]. It is
// satisfied by *rand.Rand from math/rand/v2, so a seeded generator can be
// injected for deterministic selection:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	v := arrayops.RandomFrom(src, items...)
type Rand interface {
	// IntN returns a uniformly distributed int in [0, n). It panics if
	// n <= 0, which RandomFrom never requests.
	IntN(n int) int
}

// Random returns a uniformly random element of items, drawn from the
// process-wide math/rand/v2 source. This package neither owns nor seeds
// that source.
//
// An empty items yields the zero value of T — a documented degenerate case,
// not an error. A single element is returned directly without drawing from
// the source.
func Random[T any](items ...T) T {
	switch len(items) {
	case 0:
		var zero T
		return zero
	case 1:
		return items[0]
	default:
		return items[rand.IntN(len(items))]
	}
}

// RandomFrom is [Random] with an injected source. src must not be nil; it
// is consulted only when items has two or more elements.
func RandomFrom[T any](src Rand, items ...T) T {
	switch len(items) {
	case 0:
		var zero T
		return zero
	case 1:
		return items[0]
	default:
		return items[src.IntN(len(items))]
	}
}
