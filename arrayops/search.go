package arrayops

import "reflect"

// Contains reports whether value occurs in items, comparing with ==. The
// scan is linear and stops at the first match; no items means no match.
func Contains[T comparable](value T, items ...T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any element of items satisfies match. It
// serves element types that are not comparable, and searches that need
// something richer than equality. A nil match is rejected with
// [ErrNilAction] rather than scanned.
func ContainsFunc[T any](match func(T) bool, items ...T) (bool, error) {
	if match == nil {
		return false, ErrNilAction
	}
	for _, item := range items {
		if match(item) {
			return true, nil
		}
	}
	return false, nil
}

// isNil reports whether v holds no value. An untyped nil interface is nil;
// so is a typed interface wrapping a nil pointer, map, slice, func, or
// channel. Non-nillable kinds are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// CountNil returns the number of nil elements in items. Elements of
// non-nillable kinds (ints, strings, structs) count as present, so for those
// types the result is always zero.
func CountNil[T any](items ...T) int {
	switch len(items) {
	case 0:
		return 0
	case 1:
		if isNil(items[0]) {
			return 1
		}
		return 0
	}

	count := 0
	for _, item := range items {
		if isNil(item) {
			count++
		}
	}
	return count
}

// CountNonNil returns the number of non-nil elements in items. It is the
// complement of [CountNil]: the two always sum to len(items).
func CountNonNil[T any](items ...T) int {
	return len(items) - CountNil(items...)
}
