package arrayops

// ForEach invokes action once per element, in strictly ascending index
// order. Side effects are the caller's responsibility; the iteration is
// never parallel.
//
// Returns [ErrNilAction], before any element is visited, if action is nil.
func ForEach[T any](action func(T), items ...T) error {
	if action == nil {
		return ErrNilAction
	}
	for _, item := range items {
		action(item)
	}
	return nil
}

// ForEachIndexed invokes action once per element in strictly ascending index
// order, passing the index (from 0) together with the element.
//
// Returns [ErrNilAction], before any element is visited, if action is nil.
func ForEachIndexed[T any](action func(index int, item T), items ...T) error {
	if action == nil {
		return ErrNilAction
	}
	for i, item := range items {
		action(i, item)
	}
	return nil
}
