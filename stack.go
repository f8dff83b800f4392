package timsort

// runStack is the ordered sequence of pending runs, append-only except
// for the merges consolidation performs. Raw negative-index access into
// the stack is deliberately not exposed; callers use peekFromTop,
// mergeTopTwo, and mergeSecondAndThird instead. The stack itself only
// holds (start, length) descriptors, so it needs no type parameter of
// its own — the element type only matters once a merge touches the
// underlying sequence, which is why mergeTopTwo/mergeSecondAndThird
// below are free functions rather than methods (Go methods cannot
// introduce their own type parameters).
type runStack struct {
	runs []Run
}

func (s *runStack) push(r Run) {
	s.runs = append(s.runs, r)
}

func (s *runStack) len() int {
	return len(s.runs)
}

// peekFromTop returns the run k positions below the top: k=0 is the top
// (X), k=1 is Y, k=2 is Z.
func (s *runStack) peekFromTop(k int) Run {
	return s.runs[len(s.runs)-1-k]
}

// mergeTopTwo merges the top two runs (Y and X); the merged run
// replaces them as the new top.
func mergeTopTwo[T any](s *runStack, seq []T, lt LessFunc[T], policy Policy) error {
	n := len(s.runs)
	y := s.runs[n-2]
	x := s.runs[n-1]
	merged, err := mergeAdjacent(seq, y, x, lt, policy)
	if err != nil {
		return err
	}
	s.runs[n-2] = merged
	s.runs = s.runs[:n-1]
	return nil
}

// mergeSecondAndThird merges the second and third runs from the top (Z
// and Y), leaving the top run (X) above the result.
func mergeSecondAndThird[T any](s *runStack, seq []T, lt LessFunc[T], policy Policy) error {
	n := len(s.runs)
	z := s.runs[n-3]
	y := s.runs[n-2]
	merged, err := mergeAdjacent(seq, z, y, lt, policy)
	if err != nil {
		return err
	}
	s.runs[n-3] = merged
	s.runs[n-2] = s.runs[n-1]
	s.runs = s.runs[:n-1]
	return nil
}

func mergeAdjacent[T any](seq []T, left, right Run, lt LessFunc[T], policy Policy) (Run, error) {
	if err := merge(seq, left.Start, right.Start, right.Start+right.Length, lt, policy); err != nil {
		return Run{}, err
	}
	return Run{Start: left.Start, Length: left.Length + right.Length}, nil
}

// consolidate merges adjacent runs until the stack invariant holds: for
// the top three runs X (top), Y, Z, either fewer than three runs remain,
// or Z > X+Y and Y > X.
func consolidate[T any](s *runStack, seq []T, lt LessFunc[T], policy Policy) error {
	for s.len() >= 2 {
		x := s.peekFromTop(0).Length
		y := s.peekFromTop(1).Length

		var action MergeAction
		if s.len() == 2 {
			action = policy.MergeAction(x, y)
		} else {
			z := s.peekFromTop(2).Length
			action = policy.MergeAction3(x, y, z)
		}

		switch action {
		case MergeYX:
			if err := mergeTopTwo(s, seq, lt, policy); err != nil {
				return err
			}
		case MergeZY:
			if err := mergeSecondAndThird(s, seq, lt, policy); err != nil {
				return err
			}
		case MergeNothing:
			return nil
		default:
			return ErrInvalidPolicyAction
		}
	}
	return nil
}

// drain merges all remaining runs top-down until only one remains.
func drain[T any](s *runStack, seq []T, lt LessFunc[T], policy Policy) error {
	for s.len() > 1 {
		if err := mergeTopTwo(s, seq, lt, policy); err != nil {
			return err
		}
	}
	return nil
}
