package timsort

import "cmp"

// Sort sorts s in place using the natural order of T and DefaultPolicy.
func Sort[T cmp.Ordered](s []T) error {
	return SortFunc(s, func(a, b T) bool { return a < b })
}

// SortFunc sorts s in place using the comparator lt and DefaultPolicy.
// lt must be a strict weak order: lt(a,b) && lt(b,a) must never hold.
func SortFunc[T any](s []T, lt LessFunc[T]) error {
	return SortFuncPolicy(s, lt, DefaultPolicy{})
}

// SortFuncPolicy sorts s in place using the comparator lt and the given
// Policy. Elements in s are left as a stable, non-decreasing (under lt)
// permutation of the original multiset.
//
// The driver pulls runs from the detector into the stack; after each
// push it consolidates (merging adjacent runs until the stack invariant
// holds or the policy says to stop); once the input is exhausted, it
// drains the remaining runs pairwise, top-down.
func SortFuncPolicy[T any](s []T, lt LessFunc[T], policy Policy) error {
	n := len(s)
	if n < 2 {
		return nil
	}

	minRun := policy.MinRun(n)
	obs := asObserver(policy)

	var stack runStack
	for lo := 0; lo < n; {
		run, next := detectRun(s, lo, n, lt, minRun)
		stack.push(run)
		obs.OnRunDetected(run.Length)

		if err := consolidate(&stack, s, lt, policy); err != nil {
			return err
		}
		lo = next
	}

	return drain(&stack, s, lt, policy)
}
