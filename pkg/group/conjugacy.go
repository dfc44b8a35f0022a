package group

import (
	"sort"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/perm"
)

// IsConjugate reports whether a and b are conjugate in the symmetric group
// of their degree. Two permutations are conjugate exactly when their cycle
// types agree as multisets, so this is an equivalence relation. Permutations
// of different degree are never conjugate.
func IsConjugate(a, b perm.Permutation) bool {
	if a.Degree() != b.Degree() {
		return false
	}
	return a.CycleType().Equal(b.CycleType())
}

// Conjugator constructs a permutation c with c∘a∘c⁻¹ = b by aligning
// corresponding cycles of equal length: the i-th element of a cycle of a is
// mapped to the i-th element of the matching cycle of b. Cycles of each
// length are matched in order of their leading element.
//
// Conjugator returns NOT_CONJUGATE if the cycle types differ, and
// SIZE_MISMATCH if the degrees differ.
func Conjugator(a, b perm.Permutation) (perm.Permutation, error) {
	if a.Degree() != b.Degree() {
		return perm.Permutation{}, errors.New(errors.ErrCodeSizeMismatch,
			"degree %d vs %d", a.Degree(), b.Degree())
	}
	if !a.CycleType().Equal(b.CycleType()) {
		return perm.Permutation{}, errors.New(errors.ErrCodeNotConjugate,
			"cycle types differ: %s vs %s", a.CycleType(), b.CycleType())
	}

	byLenA := cyclesByLength(a)
	byLenB := cyclesByLength(b)

	image := make([]int, a.Degree())
	for length, cyclesA := range byLenA {
		cyclesB := byLenB[length]
		for i, ca := range cyclesA {
			cb := cyclesB[i]
			for j, x := range ca {
				image[x] = cb[j]
			}
		}
	}

	c, err := perm.FromSlice(image)
	if err != nil {
		return perm.Permutation{}, errors.Wrap(errors.ErrCodeInternal, err, "built conjugator is not a permutation")
	}
	return c, nil
}

// AlternatingConjugator constructs an even permutation c with c∘a∘c⁻¹ = b,
// witnessing conjugacy within the alternating group. Both inputs must be
// even.
//
// The plain [Conjugator] is corrected when it comes out odd: composing with
// a transposition of two points fixed by a leaves the conjugation intact and
// flips the sign. Such a transposition exists whenever a moves at most n−2
// points (the "support + 2 ≤ n" condition). When no free pair exists the
// function falls back to an exhaustive search over even conjugators, which
// may legitimately fail: equal cycle types can split into two alternating
// classes (the 5-cycles of A₅ are the canonical example). Failure is
// reported as NOT_CONJUGATE.
func AlternatingConjugator(a, b perm.Permutation) (perm.Permutation, error) {
	if !a.IsEven() || !b.IsEven() {
		return perm.Permutation{}, errors.New(errors.ErrCodeNotMember,
			"both permutations must be even; signs are %d and %d", a.Sign(), b.Sign())
	}

	c, err := Conjugator(a, b)
	if err != nil {
		return perm.Permutation{}, err
	}
	if c.IsEven() {
		return c, nil
	}

	// An odd conjugator times a transposition commuting with a is still a
	// conjugator. A transposition of two fixed points of a commutes with a.
	if t, ok := fixedTransposition(a); ok {
		return perm.MustCompose(c, t), nil
	}

	n := a.Degree()
	if n > MaxEnumerationDegree {
		return perm.Permutation{}, errors.New(errors.ErrCodeDegreeTooLarge,
			"no free point pair and degree %d is too large for exhaustive search", n)
	}

	var found perm.Permutation
	ok := false
	perm.All(n, func(g perm.Permutation) bool {
		if !g.IsEven() {
			return true
		}
		conj, _ := a.Conjugate(g)
		if conj.Equal(b) {
			found, ok = g, true
			return false
		}
		return true
	})
	if !ok {
		return perm.Permutation{}, errors.New(errors.ErrCodeNotConjugate,
			"%v and %v are conjugate in S_%d but not in A_%d", a, b, n, n)
	}
	return found, nil
}

// IsAlternatingConjugate reports whether two even permutations are conjugate
// within the alternating group of their degree.
func IsAlternatingConjugate(a, b perm.Permutation) bool {
	_, err := AlternatingConjugator(a, b)
	return err == nil
}

// cyclesByLength buckets the cycles of p by length, preserving the
// leading-element order within each bucket.
func cyclesByLength(p perm.Permutation) map[int][][]int {
	out := make(map[int][][]int)
	for _, c := range p.Cycles() {
		out[len(c)] = append(out[len(c)], c)
	}
	return out
}

// fixedTransposition returns a transposition of two points fixed by p,
// if two such points exist.
func fixedTransposition(p perm.Permutation) (perm.Permutation, bool) {
	support := p.Support()
	inSupport := make(map[int]bool, len(support))
	for _, s := range support {
		inSupport[s] = true
	}
	var free []int
	for i := 0; i < p.Degree() && len(free) < 2; i++ {
		if !inSupport[i] {
			free = append(free, i)
		}
	}
	if len(free) < 2 {
		return perm.Permutation{}, false
	}
	sort.Ints(free)
	t, err := perm.Transposition(p.Degree(), free[0], free[1])
	if err != nil {
		return perm.Permutation{}, false
	}
	return t, true
}
