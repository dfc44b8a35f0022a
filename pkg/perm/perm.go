// Package perm implements permutations of a finite index set {0,…,n−1}:
// construction and validation, composition and inversion, cycle
// decomposition, cycle types, parity, cycle notation, and full-group
// enumeration via Heap's algorithm.
//
// Permutations are immutable values; every derived quantity (cycles, sign,
// cycle type) is a pure function of the value. The package has no
// dependencies beyond the standard library so it can sit underneath the
// group, render, and API layers.
package perm

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidPermutation is returned by [FromSlice] when the input is not
	// a bijection on {0,…,n−1}: a value is out of range, repeated, or missing.
	ErrInvalidPermutation = errors.New("values are not a permutation of 0..n-1")

	// ErrSizeMismatch is returned by [Compose] and other binary operations
	// when the two permutations act on index sets of different sizes.
	ErrSizeMismatch = errors.New("permutations have different degrees")

	// ErrInvalidCycles is returned by [FromCycles] when the given cycles are
	// not disjoint, reference an index out of range, or repeat an index
	// within a single cycle.
	ErrInvalidCycles = errors.New("cycles are not disjoint or reference invalid indices")
)

// Permutation is a bijection of the index set {0,…,n−1} onto itself, stored
// as the image sequence: element i maps to the i-th stored value.
//
// Permutations are immutable values. All methods return new permutations and
// never modify the receiver. The zero value is the empty permutation of
// degree 0 (which is valid: it is the identity on the empty set).
type Permutation struct {
	image []int
}

// FromSlice constructs a permutation from its image sequence. values[i] is
// the image of i. The slice is copied, so the caller may reuse it.
//
// FromSlice returns [ErrInvalidPermutation] if values is not a rearrangement
// of 0..len(values)−1.
func FromSlice(values []int) (Permutation, error) {
	n := len(values)
	seen := make([]bool, n)
	for i, v := range values {
		if v < 0 || v >= n {
			return Permutation{}, fmt.Errorf("index %d maps to %d: %w", i, v, ErrInvalidPermutation)
		}
		if seen[v] {
			return Permutation{}, fmt.Errorf("value %d appears twice: %w", v, ErrInvalidPermutation)
		}
		seen[v] = true
	}
	return Permutation{image: slices.Clone(values)}, nil
}

// MustFromSlice is like [FromSlice] but panics on invalid input.
// It is intended for fixed permutations in tests and examples.
func MustFromSlice(values []int) Permutation {
	p, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the identity permutation of degree n, mapping every index
// to itself. For n <= 0, Identity returns the empty permutation.
func Identity(n int) Permutation {
	if n <= 0 {
		return Permutation{}
	}
	return Permutation{image: Seq(n)}
}

// Degree returns the size n of the index set the permutation acts on.
func (p Permutation) Degree() int { return len(p.image) }

// Apply returns the image of index i. It panics if i is out of range,
// matching slice indexing semantics. Apply is O(1).
func (p Permutation) Apply(i int) int { return p.image[i] }

// Image returns a copy of the underlying image sequence.
func (p Permutation) Image() []int { return slices.Clone(p.image) }

// IsIdentity reports whether p fixes every index.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.image {
		if i != v {
			return false
		}
	}
	return true
}

// Equal reports whether p and q are the same permutation of the same degree.
func (p Permutation) Equal(q Permutation) bool {
	return slices.Equal(p.image, q.image)
}

// Compose returns the permutation p∘q, which applies q first and then p:
// (p∘q)(i) = p(q(i)). Both permutations must have the same degree;
// otherwise Compose returns [ErrSizeMismatch].
func Compose(p, q Permutation) (Permutation, error) {
	if p.Degree() != q.Degree() {
		return Permutation{}, fmt.Errorf("degree %d vs %d: %w", p.Degree(), q.Degree(), ErrSizeMismatch)
	}
	out := make([]int, len(p.image))
	for i := range out {
		out[i] = p.image[q.image[i]]
	}
	return Permutation{image: out}, nil
}

// MustCompose is like [Compose] but panics on degree mismatch. It is a
// convenience for call sites that already hold same-degree permutations,
// such as group enumeration and the closure loop.
func MustCompose(p, q Permutation) Permutation {
	r, err := Compose(p, q)
	if err != nil {
		panic(err)
	}
	return r
}

// Inverse returns the permutation q with q(p(i)) = i for every index i.
// The inverse is built by reversing the image mapping.
func (p Permutation) Inverse() Permutation {
	out := make([]int, len(p.image))
	for i, v := range p.image {
		out[v] = i
	}
	return Permutation{image: out}
}

// Pow returns p composed with itself k times. Pow(0) is the identity and
// negative exponents are powers of the inverse. The exponent is reduced
// modulo the permutation's order implicitly by repeated composition, which
// is fine for the small degrees this package targets.
func (p Permutation) Pow(k int) Permutation {
	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}
	out := Identity(p.Degree())
	for ; k > 0; k-- {
		out = MustCompose(out, base)
	}
	return out
}

// Conjugate returns c∘p∘c⁻¹, the conjugate of p by c. Both permutations
// must have the same degree; otherwise Conjugate returns [ErrSizeMismatch].
func (p Permutation) Conjugate(c Permutation) (Permutation, error) {
	if p.Degree() != c.Degree() {
		return Permutation{}, fmt.Errorf("degree %d vs %d: %w", p.Degree(), c.Degree(), ErrSizeMismatch)
	}
	inner := MustCompose(c, p)
	return MustCompose(inner, c.Inverse()), nil
}

// Support returns the indices moved by p, in increasing order.
// The identity has empty support.
func (p Permutation) Support() []int {
	var moved []int
	for i, v := range p.image {
		if i != v {
			moved = append(moved, i)
		}
	}
	return moved
}

// Key returns a canonical string form of the image sequence, usable as a map
// key for element sets. Permutations of different degree never collide
// because the encoded length differs.
func (p Permutation) Key() string {
	b, _ := json.Marshal(p.image)
	return string(b)
}

// MarshalJSON encodes the permutation as its image array.
func (p Permutation) MarshalJSON() ([]byte, error) {
	if p.image == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.image)
}

// UnmarshalJSON decodes an image array, validating it as a permutation.
func (p *Permutation) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	q, err := FromSlice(values)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
