package perm

import "slices"

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the image sequence of the identity and the starting point for
// building permutation arrays.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// n! is the order of the symmetric group on n points. Factorials grow
// extremely fast: 13! = 6,227,020,800 exceeds 32-bit int, so full-group
// enumeration is only practical for small n.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns image sequences for permutations of [0, 1, ..., n-1]
// using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit sequences.
// If limit <= 0, Generate returns all n! sequences.
//
// Each returned slice is a separate allocation, safe to modify without
// affecting others. Heap's algorithm visits permutations in a
// non-lexicographic order but produces each exactly once.
//
// Edge cases: n = 0 yields [[]] and n = 1 yields [[0]]. For n >= 13 the
// number of permutations exceeds billions; always pass a limit then.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	seq := Seq(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(seq))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				seq[0], seq[i] = seq[i], seq[0]
			} else {
				seq[state[i]], seq[i] = seq[i], seq[state[i]]
			}
			result = append(result, slices.Clone(seq))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// All calls yield for every permutation of degree n, in Heap's-algorithm
// order, stopping early if yield returns false. It is the typed counterpart
// of [Generate] and avoids materializing all n! values at once.
func All(n int, yield func(Permutation) bool) {
	if n <= 1 {
		yield(Identity(n))
		return
	}

	seq := Seq(n)
	state := make([]int, n)

	if !yield(Permutation{image: slices.Clone(seq)}) {
		return
	}
	for i := 0; i < n; {
		if state[i] < i {
			if i&1 == 0 {
				seq[0], seq[i] = seq[i], seq[0]
			} else {
				seq[state[i]], seq[i] = seq[i], seq[state[i]]
			}
			if !yield(Permutation{image: slices.Clone(seq)}) {
				return
			}
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
}
