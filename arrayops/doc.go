// Package arrayops provides standalone, framework-agnostic primitives for Go
// slices: iteration, construction, replacement, random selection,
// concatenation, conversion, stringification, membership search, and
// nil-counting. It is meant as a supplement to the standard library's slices
// package, not a replacement.
//
// # Design
//
// Every function is generic (Go 1.18+) and operates on plain []T values —
// no wrapper type required. The library is stateless: callers retain
// ownership of their slices, results are freshly allocated, and nothing is
// remembered between calls. Two functions step outside pure computation:
// [Replace] writes into the caller's slice in place, and [Random] reads the
// process-wide random source.
//
// Most functions accept their elements variadically, so both call styles
// work:
//
//	arrayops.Join(", ", "a", "b", "c")
//	arrayops.Join(", ", parts...)
//
// # Degenerate inputs
//
// Empty inputs never yield nil: an operation that produces an empty result
// returns a zero-length, non-nil slice (or "" for [Join]). [Random] on an
// empty slice returns the zero value of the element type; this is a
// documented degenerate case, not an error.
//
// # Errors
//
// Fallible operations return sentinel errors declared in this package and
// compared with errors.Is:
//
//	if _, err := arrayops.Replace(items, 9, "x"); errors.Is(err, arrayops.ErrIndexOutOfRange) {
//	    // index was outside [0, len(items))
//	}
//
// Nothing is retried, recovered, or swallowed; every failure propagates
// synchronously to the immediate caller. Index violations on direct slice
// accesses surface as the runtime's own bounds panics, never clamped.
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct slices.
// [ParallelCountNil] and [ParallelCountNonNil] are the only functions that
// fan out internally; they return only after every worker has finished and
// always produce the same result as their sequential counterparts. Passing
// the same slice concurrently to [Replace] and any reader requires external
// synchronization; this library provides none.
//
// # Randomness
//
// [Random] consults the process-wide math/rand/v2 source, which this package
// neither owns nor seeds. For deterministic selection (typically in tests),
// inject a seeded source through [RandomFrom]:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	v := arrayops.RandomFrom(src, items...)
package arrayops
