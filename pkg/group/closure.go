package group

import (
	"context"
	"time"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/observability"
	"github.com/matzehuels/permtower/pkg/perm"
)

// NormalClosure computes the smallest normal subgroup of ambient containing
// the generators, by iterative fixed-point saturation: the working set is
// seeded with the identity and the generators, then grown with every
// conjugate by an ambient element, every pairwise product, and every
// inverse, until a full round discovers nothing new. Termination is
// guaranteed because ambient is finite and the set grows monotonically.
//
// The result is closed under composition, inversion, and conjugation by all
// of ambient, and is minimal among such sets containing the generators.
//
// An empty generator set is a defined edge case, not an error: the closure
// is the trivial subgroup containing only the identity.
//
// Generators must be elements of ambient; a generator of the wrong degree
// yields SIZE_MISMATCH and a non-member yields NOT_MEMBER. The context is
// checked once per saturation round, so cancellation latency is bounded by
// a single round.
func NormalClosure(ctx context.Context, generators []perm.Permutation, ambient *Subgroup) (*Subgroup, error) {
	start := time.Now()
	observability.Closure().OnSaturationStart(ctx, ambient.Degree(), len(generators))

	closure, rounds, err := saturate(ctx, generators, ambient)
	observability.Closure().OnSaturationComplete(ctx, ambient.Degree(), orderOf(closure), rounds, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return closure, nil
}

func orderOf(s *Subgroup) int {
	if s == nil {
		return 0
	}
	return s.Order()
}

func saturate(ctx context.Context, generators []perm.Permutation, ambient *Subgroup) (*Subgroup, int, error) {
	for _, g := range generators {
		if g.Degree() != ambient.Degree() {
			return nil, 0, errors.New(errors.ErrCodeSizeMismatch,
				"generator %v has degree %d, ambient group has degree %d", g, g.Degree(), ambient.Degree())
		}
		if !ambient.Contains(g) {
			return nil, 0, errors.New(errors.ErrCodeNotMember,
				"generator %v is not an element of the ambient group", g)
		}
	}

	closure := NewSubgroup(ambient.Degree())
	frontier := make([]perm.Permutation, 0, len(generators))
	for _, g := range generators {
		if closure.add(g) {
			frontier = append(frontier, g)
		}
	}

	ambientElems := ambient.Elements()
	rounds := 0
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, rounds, errors.Wrap(errors.ErrCodeInternal, err, "saturation cancelled")
		}
		rounds++

		var next []perm.Permutation
		grow := func(p perm.Permutation) {
			if closure.add(p) {
				next = append(next, p)
			}
		}

		for _, s := range frontier {
			grow(s.Inverse())
			for _, g := range ambientElems {
				conj, _ := s.Conjugate(g)
				grow(conj)
			}
			for _, t := range closure.Elements() {
				grow(perm.MustCompose(s, t))
				grow(perm.MustCompose(t, s))
			}
		}

		observability.Closure().OnSaturationRound(ctx, rounds, closure.Order(), len(next))
		frontier = next
	}

	return closure, rounds, nil
}
