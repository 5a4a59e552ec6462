package cmp

func SliceEq[T comparable](a []T, b []T) bool {
	return SliceEqWith(a, b, EqEq[T])
}

// check 2 slices have same length and pairwise-equal content.
//
// args:
//   - a []A, b []B: slices to be compared
//   - pred: predicator saying nth element of a matches nth element of b.
func SliceEqWith[A any, B any](a []A, b []B, pred BiPredicator[A, B]) bool {
	if len(a) != len(b) {
		return false
	}
	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}
	return true
}

// check 2 slices have the same content, ignoring ordering.
//
// In other words, this function answers equality of two bags (multi-sets).
func SliceContentEq[T comparable](a, b []T) bool {
	return SliceContentEqWith(a, b, EqEq[T])
}

func SliceContentEqWith[A, B any](a []A, b []B, equiv BiPredicator[A, B]) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	bm := make(map[int]*B, len(b))
	for i := range b {
		bm[i] = &b[i]
	}

NEXT_A:
	for _, va := range a {
		for k, vb := range bm {
			if equiv(va, *vb) {
				delete(bm, k)
				continue NEXT_A
			}
		}
		return false
	}

	return true
}
