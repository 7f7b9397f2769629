package arrayops

// Concat flattens arrays into a single slice, preserving both the order of
// the arrays and the order of the elements within each. The result is always
// freshly allocated: even a single input array is copied rather than
// aliased, so mutating the result never disturbs an input.
//
// No arguments yields an empty, non-nil slice. Nil and empty inner slices
// contribute nothing.
func Concat[T any](arrays ...[]T) []T {
	switch len(arrays) {
	case 0:
		return []T{}
	case 1:
		out := make([]T, len(arrays[0]))
		copyRegion(arrays[0], 0, out, 0, len(arrays[0]))
		return out
	}

	total := 0
	for _, arr := range arrays {
		total += len(arr)
	}

	out := make([]T, total)
	offset := 0
	for _, arr := range arrays {
		switch n := len(arr); n {
		case 0:
		case 1:
			out[offset] = arr[0]
			offset++
		default:
			copyRegion(arr, 0, out, offset, n)
			offset += n
		}
	}
	return out
}
