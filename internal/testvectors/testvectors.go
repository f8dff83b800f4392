// Package testvectors generates deterministic, seeded test inputs for
// exercising the sort: sequences built from a number of internally
// sorted chunks, which is exactly the shape a Timsort-family sort is
// designed to exploit (it should merge the chunks in close to O(n)
// rather than O(n log n) time). Generation is seeded and deterministic,
// built on math/rand/v2's seedable generator.
package testvectors

import "math/rand/v2"

// PartlySortedInts returns a slice of numberOfParts*lengthOfEach ints,
// built by generating numberOfParts chunks of lengthOfEach random ints
// each, sorting each chunk independently, and concatenating them. The
// result is deterministic for a given seed.
func PartlySortedInts(seed uint64, numberOfParts, lengthOfEach int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	result := make([]int, 0, numberOfParts*lengthOfEach)
	for part := 0; part < numberOfParts; part++ {
		chunk := make([]int, lengthOfEach)
		for i := range chunk {
			chunk[i] = int(rng.Int64())
		}
		insertionSortInts(chunk)
		result = append(result, chunk...)
	}
	return result
}

// RandomInts returns a slice of n random ints with no pre-sorted
// structure, for exercising the sort against fully shuffled input.
func RandomInts(seed uint64, n int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	result := make([]int, n)
	for i := range result {
		result[i] = int(rng.Int64())
	}
	return result
}

// insertionSortInts sorts small chunks without depending on the
// package under test, so the generator stays independent of it.
func insertionSortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
