package arrayops

import "fmt"

// Fill creates a new slice of the given length with every slot set to value.
// The result is never nil; Fill(0, v) is []T{}.
//
// Lengths 0–3 return slice literals directly. Longer slices are filled by
// doubling the initialized region with the builtin copy, which is O(log n)
// copy calls over the runtime's optimized memmove. Both paths are
// behaviorally identical to a plain loop.
//
// A negative length panics via make, the same channel as any other
// out-of-range slice operation.
func Fill[T any](length int, value T) []T {
	switch length {
	case 0:
		return []T{}
	case 1:
		return []T{value}
	case 2:
		return []T{value, value}
	case 3:
		return []T{value, value, value}
	}

	out := make([]T, length)
	out[0] = value
	for filled := 1; filled < length; filled *= 2 {
		copy(out[filled:], out[:filled])
	}
	return out
}

// Replace writes replacement at index within items and returns the value
// previously stored there. This is the only function in the package that
// mutates a caller's slice; the write is in place, never on a copy.
//
// An index outside [0, len(items)) leaves the slice untouched and returns
// the zero value together with an error wrapping [ErrIndexOutOfRange].
func Replace[T any](items []T, index int, replacement T) (T, error) {
	if index < 0 || index >= len(items) {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, index, len(items))
	}
	old := items[index]
	items[index] = replacement
	return old, nil
}
