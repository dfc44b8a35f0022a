package perm

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Type is the cycle type of a permutation: the multiset of its cycle
// lengths, stored canonically as a descending-sorted slice. Two cycle types
// compare equal exactly when the multisets are equal. The lengths of a
// degree-n permutation's cycle type always sum to n.
type Type []int

// Equal reports whether two cycle types are the same multiset of lengths.
func (t Type) Equal(u Type) bool { return slices.Equal(t, u) }

// Sum returns the total of all cycle lengths, which equals the degree of
// any permutation with this cycle type.
func (t Type) Sum() int {
	total := 0
	for _, l := range t {
		total += l
	}
	return total
}

// MaxLength returns the longest cycle length, or 0 for the empty type.
func (t Type) MaxLength() int {
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

// Count returns how many cycles have the given length.
func (t Type) Count(length int) int {
	n := 0
	for _, l := range t {
		if l == length {
			n++
		}
	}
	return n
}

// String formats the cycle type as "{5}" or "{2,2,1}".
func (t Type) String() string {
	parts := make([]string, len(t))
	for i, l := range t {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Cycles decomposes p into its disjoint cycles. Each cycle is the orbit of
// its smallest element, listed starting from that element and following p.
// Cycles are ordered by their leading element, include fixed points as
// length-1 cycles, and together cover every index exactly once.
func (p Permutation) Cycles() [][]int {
	n := p.Degree()
	visited := make([]bool, n)
	var cycles [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cycle := []int{start}
		visited[start] = true
		for next := p.image[start]; next != start; next = p.image[next] {
			visited[next] = true
			cycle = append(cycle, next)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// CycleType returns the multiset of p's cycle lengths in canonical
// (descending) order. The lengths sum to p.Degree().
func (p Permutation) CycleType() Type {
	cycles := p.Cycles()
	t := make(Type, len(cycles))
	for i, c := range cycles {
		t[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t)))
	return t
}

// Sign returns the parity of p: +1 for even permutations, −1 for odd ones.
// It is computed as (−1)^(n − number of cycles), which equals the product
// of (−1)^(length−1) over all cycles. Sign is a homomorphism:
// Sign(p∘q) = Sign(p)·Sign(q).
func (p Permutation) Sign() int {
	if (p.Degree()-len(p.Cycles()))%2 == 0 {
		return 1
	}
	return -1
}

// IsEven reports whether p has sign +1, i.e. whether p belongs to the
// alternating group of its degree.
func (p Permutation) IsEven() bool { return p.Sign() == 1 }

// FromCycles rebuilds a degree-n permutation from disjoint cycles. Indices
// absent from every cycle are fixed points, so length-1 cycles may be
// omitted. This inverts [Permutation.Cycles]: reconstructing from a
// decomposition reproduces the original permutation.
//
// FromCycles returns [ErrInvalidCycles] if an index is out of range or
// appears more than once across all cycles.
func FromCycles(n int, cycles [][]int) (Permutation, error) {
	image := Seq(n)
	seen := make([]bool, n)
	for _, cycle := range cycles {
		for i, v := range cycle {
			if v < 0 || v >= n {
				return Permutation{}, fmt.Errorf("index %d out of range for degree %d: %w", v, n, ErrInvalidCycles)
			}
			if seen[v] {
				return Permutation{}, fmt.Errorf("index %d appears twice: %w", v, ErrInvalidCycles)
			}
			seen[v] = true
			image[v] = cycle[(i+1)%len(cycle)]
		}
	}
	return Permutation{image: image}, nil
}

// Transposition returns the degree-n permutation swapping a and b.
// It returns [ErrInvalidCycles] if a or b is out of range, or a == b.
func Transposition(n, a, b int) (Permutation, error) {
	if a == b {
		return Permutation{}, fmt.Errorf("transposition needs two distinct points: %w", ErrInvalidCycles)
	}
	return FromCycles(n, [][]int{{a, b}})
}
