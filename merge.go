package timsort

// LessFunc is a strict weak order over T: lt(a,b) && lt(b,a) must never
// hold. Equality is derived as !lt(a,b) && !lt(b,a).
type LessFunc[T any] func(a, b T) bool

type mergeSide int

const (
	sideLeft mergeSide = iota
	sideRight
)

// merge stably merges the two adjacent sorted runs s[first:middle] and
// s[middle:last] in place. It copies the smaller run into an auxiliary
// buffer and scans from that run's side: forward from first when the
// left run is buffered, backward from last when the right run is,
// galloping (binary-search bulk copy) once one side wins
// policy.GallopThreshold() comparisons in a row.
func merge[T any](s []T, first, middle, last int, lt LessFunc[T], policy Policy) error {
	if first > middle || middle > last {
		return ErrInvalidRange
	}
	obs := asObserver(policy)
	threshold := policy.GallopThreshold()

	if middle-first <= last-middle {
		mergeLeft(s, first, middle, last, lt, threshold, obs)
	} else {
		mergeRight(s, first, middle, last, lt, threshold, obs)
	}
	obs.OnMerge(last - first)
	return nil
}

// mergeLeft buffers the left run [first,middle) into aux, then scans
// forward, writing the winner of each comparison to out starting at
// first. RIGHT wins ties go to LEFT first, preserving stability.
func mergeLeft[T any](s []T, first, middle, last int, lt LessFunc[T], threshold int, obs Observer) {
	aux := make([]T, middle-first)
	copy(aux, s[first:middle])

	i, j, out := 0, middle, first
	lenAux := len(aux)

	streakLen := 0
	var streakSide mergeSide
	started := false

	for i < lenAux && j < last {
		rightWins := lt(s[j], aux[i])
		side := sideLeft
		if rightWins {
			side = sideRight
		}
		if !started || side != streakSide {
			streakLen = 0
		}
		streakSide = side
		started = true
		streakLen++

		if streakLen < threshold {
			if rightWins {
				s[out] = s[j]
				out++
				j++
			} else {
				s[out] = aux[i]
				out++
				i++
			}
			continue
		}

		obs.OnGallop()
		if rightWins {
			// Winner is RIGHT: lower-bound search in the winning
			// (right) side for the losing side's head, aux[i].
			pos := j + lowerBound(s[j:last], aux[i], lt)
			n := pos - j
			copy(s[out:out+n], s[j:pos])
			out += n
			j = pos
		} else {
			// Winner is LEFT: upper-bound search in the winning
			// (left/aux) side for the losing side's head, s[j].
			pos := i + upperBound(aux[i:lenAux], s[j], lt)
			n := pos - i
			copy(s[out:out+n], aux[i:pos])
			out += n
			i = pos
		}
		streakLen = 0
	}

	// B's remainder, if any, is already in place; copy aux's remainder.
	copy(s[out:out+(lenAux-i)], aux[i:lenAux])
}

// mergeRight buffers the right run [middle,last) into aux, then scans
// backward from the end, writing the winner of each comparison to out
// starting at last-1. The gallop bound directions are mirrored from
// mergeLeft so that ties still resolve with the left element ahead of
// the right one in the final order.
func mergeRight[T any](s []T, first, middle, last int, lt LessFunc[T], threshold int, obs Observer) {
	aux := make([]T, last-middle)
	copy(aux, s[middle:last])

	i, j, out := middle-1, len(aux)-1, last-1

	streakLen := 0
	var streakSide mergeSide
	started := false

	for i >= first && j >= 0 {
		leftWins := lt(aux[j], s[i])
		side := sideRight
		if leftWins {
			side = sideLeft
		}
		if !started || side != streakSide {
			streakLen = 0
		}
		streakSide = side
		started = true
		streakLen++

		if streakLen < threshold {
			if leftWins {
				s[out] = s[i]
				out--
				i--
			} else {
				s[out] = aux[j]
				out--
				j--
			}
			continue
		}

		obs.OnGallop()
		if leftWins {
			// Winner is LEFT: upper-bound search in the remaining
			// left prefix s[first:i+1] for the losing side's head,
			// aux[j]; everything after the bound is still > aux[j].
			ub := upperBound(s[first:i+1], aux[j], lt)
			boundary := first + ub
			n := i + 1 - boundary
			dst := out - n + 1
			copy(s[dst:out+1], s[boundary:i+1])
			out -= n
			i = boundary - 1
		} else {
			// Winner is RIGHT: lower-bound search in the remaining
			// right prefix aux[0:j+1] for the losing side's head,
			// s[i]; everything from the bound onward still beats s[i].
			lb := lowerBound(aux[0:j+1], s[i], lt)
			n := j + 1 - lb
			dst := out - n + 1
			copy(s[dst:out+1], aux[lb:j+1])
			out -= n
			j = lb - 1
		}
		streakLen = 0
	}

	if j >= 0 {
		// Left run exhausted first; aux's remainder is not yet in
		// place and must be copied to the front of the range.
		copy(s[first:first+j+1], aux[:j+1])
	}
	// If i >= first instead, the remaining left elements were never
	// moved and are already in their correct final positions.
}
