package arrayops

import "errors"

// Sentinel errors returned by arrayops operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arrayops.Replace(items, i, v)
//	if errors.Is(err, arrayops.ErrIndexOutOfRange) {
//	    // i was outside [0, len(items))
//	}
var (
	// ErrNilAction is returned by ForEach, ForEachIndexed, and
	// ContainsFunc, before any element is visited, when the callback is
	// nil.
	ErrNilAction = errors.New("arrayops: action must not be nil")

	// ErrNilTransform is returned by Convert, ConvertNumeric, and
	// ConvertMany, before any element is converted, when the transform
	// callback is nil.
	ErrNilTransform = errors.New("arrayops: transform must not be nil")

	// ErrIndexOutOfRange is returned by Replace when the index is outside
	// [0, len(items)). The wrapped message carries the offending index and
	// the slice length.
	ErrIndexOutOfRange = errors.New("arrayops: index out of range")
)
