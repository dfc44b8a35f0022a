// Package group implements finite permutation groups built on [perm]:
// symmetric and alternating group enumeration, conjugacy testing with
// explicit conjugator construction, normal-closure computation by
// fixed-point saturation, and a simplicity oracle for the alternating
// group on five points.
package group

import (
	"sort"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/perm"
)

// MaxEnumerationDegree bounds full-group enumeration. 12! ≈ 4.8×10⁸ already
// strains memory; beyond it [Symmetric] and [Alternating] refuse to run.
const MaxEnumerationDegree = 12

// Subgroup is a set of same-degree permutations containing the identity and
// closed under composition and inversion. Elements are keyed by their
// canonical image-sequence form, so membership tests are O(1).
//
// A Subgroup is built once per query and then treated as read-only; it is
// safe for concurrent reads but not concurrent mutation.
type Subgroup struct {
	degree   int
	elements map[string]perm.Permutation
}

// NewSubgroup creates a subgroup of the given degree containing only the
// identity. Callers grow it with [Subgroup.add]; the exported constructors
// ([Symmetric], [Alternating], [NormalClosure]) guarantee the closure
// invariants.
func NewSubgroup(degree int) *Subgroup {
	s := &Subgroup{degree: degree, elements: make(map[string]perm.Permutation)}
	s.add(perm.Identity(degree))
	return s
}

// Degree returns the degree of the index set the subgroup acts on.
func (s *Subgroup) Degree() int { return s.degree }

// Order returns the number of elements in the subgroup.
func (s *Subgroup) Order() int { return len(s.elements) }

// Contains reports whether p is an element of the subgroup.
// Permutations of a different degree are never contained.
func (s *Subgroup) Contains(p perm.Permutation) bool {
	if p.Degree() != s.degree {
		return false
	}
	_, ok := s.elements[p.Key()]
	return ok
}

// Elements returns all elements sorted by canonical key, so the order is
// deterministic across runs.
func (s *Subgroup) Elements() []perm.Permutation {
	keys := make([]string, 0, len(s.elements))
	for k := range s.elements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]perm.Permutation, len(keys))
	for i, k := range keys {
		out[i] = s.elements[k]
	}
	return out
}

// Equal reports whether two subgroups have exactly the same element set.
func (s *Subgroup) Equal(t *Subgroup) bool {
	if s.degree != t.degree || len(s.elements) != len(t.elements) {
		return false
	}
	for k := range s.elements {
		if _, ok := t.elements[k]; !ok {
			return false
		}
	}
	return true
}

// add inserts p and reports whether it was new.
func (s *Subgroup) add(p perm.Permutation) bool {
	k := p.Key()
	if _, ok := s.elements[k]; ok {
		return false
	}
	s.elements[k] = p
	return true
}

// IsClosed verifies the subgroup axioms by exhaustive check: identity
// membership, closure under inversion, and closure under composition.
// It is quadratic in the order and intended for tests and the oracle's
// self-checks, not hot paths.
func (s *Subgroup) IsClosed() bool {
	if !s.Contains(perm.Identity(s.degree)) {
		return false
	}
	elems := s.Elements()
	for _, a := range elems {
		if !s.Contains(a.Inverse()) {
			return false
		}
		for _, b := range elems {
			if !s.Contains(perm.MustCompose(a, b)) {
				return false
			}
		}
	}
	return true
}

// IsNormalIn reports whether s is a normal subgroup of ambient: every
// conjugate of an element of s by an element of ambient stays in s.
// Both groups must share a degree.
func (s *Subgroup) IsNormalIn(ambient *Subgroup) bool {
	if s.degree != ambient.degree {
		return false
	}
	for _, g := range ambient.Elements() {
		for _, h := range s.Elements() {
			conj, _ := h.Conjugate(g)
			if !s.Contains(conj) {
				return false
			}
		}
	}
	return true
}

// FromElements builds a subgroup from an explicit element list, verifying
// the subgroup axioms. Use it when re-importing a previously exported
// subgroup. It returns INVALID_PERMUTATION if an element has the wrong
// degree and NOT_MEMBER if the set is not closed.
func FromElements(degree int, elems []perm.Permutation) (*Subgroup, error) {
	s := NewSubgroup(degree)
	for _, e := range elems {
		if e.Degree() != degree {
			return nil, errors.New(errors.ErrCodeSizeMismatch,
				"element %v has degree %d, expected %d", e, e.Degree(), degree)
		}
		s.add(e)
	}
	if !s.IsClosed() {
		return nil, errors.New(errors.ErrCodeNotMember,
			"element set of size %d is not closed under composition and inversion", len(elems))
	}
	return s, nil
}

// Symmetric enumerates the full symmetric group on n points.
// It returns DEGREE_TOO_LARGE for n > [MaxEnumerationDegree].
func Symmetric(n int) (*Subgroup, error) {
	if n > MaxEnumerationDegree {
		return nil, errors.New(errors.ErrCodeDegreeTooLarge,
			"cannot enumerate S_%d (%d! elements); max degree is %d", n, n, MaxEnumerationDegree)
	}
	s := NewSubgroup(n)
	perm.All(n, func(p perm.Permutation) bool {
		s.add(p)
		return true
	})
	return s, nil
}

// Alternating enumerates the alternating group on n points: the even
// permutations of [Symmetric]. It returns DEGREE_TOO_LARGE for
// n > [MaxEnumerationDegree].
func Alternating(n int) (*Subgroup, error) {
	if n > MaxEnumerationDegree {
		return nil, errors.New(errors.ErrCodeDegreeTooLarge,
			"cannot enumerate A_%d; max degree is %d", n, MaxEnumerationDegree)
	}
	s := NewSubgroup(n)
	perm.All(n, func(p perm.Permutation) bool {
		if p.IsEven() {
			s.add(p)
		}
		return true
	})
	return s, nil
}
