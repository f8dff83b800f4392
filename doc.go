// Package timsort provides a generic, stable, adaptive sort.
//
// It is a hybrid sort of the Timsort family: the input is partitioned
// into monotone runs, short runs are extended with binary insertion
// sort up to a minimum length, and runs are repeatedly merged from a
// stack according to an invariant that bounds the stack depth while
// keeping merge sizes balanced. The merge step gallops through long
// streaks of wins from the same side.
//
// Like all proper mergesorts, this sort is stable and runs in O(n log n)
// time worst case, degrading gracefully to close to O(n) on already
// (or piecewise) sorted input. Worst-case auxiliary storage is ⌈n/2⌉
// elements, the size of the smaller side of the largest merge.
//
// This implementation follows the timsort family described by Tim
// Peters for CPython's list.sort, by way of Josh Bloch's TimSort for
// java.util. Run sizing and merge decisions are split out into a
// separate Policy value, so the algorithm's shape and its tuning
// parameters can vary independently.
package timsort
