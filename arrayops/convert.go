package arrayops

import "golang.org/x/exp/constraints"

// Numeric constrains a type parameter to the built-in integer and
// floating-point kinds. It is the element constraint of [ConvertNumeric].
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Convert maps items through transform into a freshly allocated slice of
// the destination type. Element order is preserved; transform is applied
// exactly once per element, in ascending index order.
//
// A nil transform is rejected with [ErrNilTransform] before any element is
// touched. No items yields an empty, non-nil slice without invoking
// transform at all.
func Convert[S, D any](transform func(S) D, items ...S) ([]D, error) {
	if transform == nil {
		return nil, ErrNilTransform
	}
	switch len(items) {
	case 0:
		return []D{}, nil
	case 1:
		return []D{transform(items[0])}, nil
	}

	out := make([]D, len(items))
	for i, item := range items {
		out[i] = transform(item)
	}
	return out, nil
}

// ConvertNumeric is [Convert] restricted to numeric destinations. The
// constraint lets callers map arbitrary sources onto any integer or float
// kind without the destination widening to interface values.
func ConvertNumeric[S any, N Numeric](transform func(S) N, items ...S) ([]N, error) {
	if transform == nil {
		return nil, ErrNilTransform
	}
	switch len(items) {
	case 0:
		return []N{}, nil
	case 1:
		return []N{transform(items[0])}, nil
	}

	out := make([]N, len(items))
	for i, item := range items {
		out[i] = transform(item)
	}
	return out, nil
}

// ConvertMany converts every element of every input slice into one flat
// result, ordered first by slice and then by position within the slice. The
// result length is the sum of the input lengths, so
//
//	ConvertMany(f, a, b)
//
// is equivalent to Convert(f, Concat(a, b)...) without the intermediate
// allocation.
//
// A nil transform is rejected with [ErrNilTransform]. No slices, or slices
// that are all empty, yield an empty, non-nil result.
func ConvertMany[S, D any](transform func(S) D, arrays ...[]S) ([]D, error) {
	if transform == nil {
		return nil, ErrNilTransform
	}

	total := 0
	for _, arr := range arrays {
		total += len(arr)
	}
	if total == 0 {
		return []D{}, nil
	}

	out := make([]D, total)
	offset := 0
	for _, arr := range arrays {
		for _, item := range arr {
			out[offset] = transform(item)
			offset++
		}
	}
	return out, nil
}
