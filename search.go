package timsort

// lowerBound returns the smallest index i in [0, len(s)] such that
// !lt(s[j], key) holds for all j >= i — i.e. the first position at or
// after which key may be inserted without disturbing order, placing it
// before any elements equal to it. Used internally by the gallop path
// in merge.go and by the exported Search below.
func lowerBound[T any](s []T, key T, lt LessFunc[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if lt(s[mid], key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the smallest index i in [0, len(s)] such that
// lt(key, s[j]) holds for all j >= i — i.e. the first position at or
// after which key may be inserted placing it after any elements equal
// to it.
func upperBound[T any](s []T, key T, lt LessFunc[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if lt(key, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Search returns the first index i in sorted such that sorted[i] does
// not precede item under lt (a lower-bound search). sorted must already
// be sorted under lt. If no such index exists, it returns len(sorted).
func Search[T any](sorted []T, item T, lt LessFunc[T]) int {
	return lowerBound(sorted, item, lt)
}

// Contains reports whether item is present in sorted, which must
// already be sorted under lt. Equality is derived as neither element
// preceding the other, matching the sort's own notion of equality.
func Contains[T any](sorted []T, item T, lt LessFunc[T]) bool {
	i := Search(sorted, item, lt)
	return i < len(sorted) && !lt(item, sorted[i]) && !lt(sorted[i], item)
}
