package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// String formats p in cycle notation, e.g. "(0 4)(1 3)". Fixed points are
// omitted; the identity prints as "()". The leading element of each cycle is
// its smallest member and cycles appear in order of their leading element,
// matching [Permutation.Cycles].
func (p Permutation) String() string {
	var b strings.Builder
	for _, cycle := range p.Cycles() {
		if len(cycle) == 1 {
			continue
		}
		b.WriteByte('(')
		for i, v := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "()"
	}
	return b.String()
}

// Parse reads cycle notation into a degree-n permutation. The input is a
// sequence of parenthesized cycles of space- or comma-separated indices,
// e.g. "(0 4)(1 3)". "()" and the empty string denote the identity.
//
// Parse returns [ErrInvalidCycles] for malformed notation, out-of-range
// indices, or overlapping cycles.
func Parse(n int, s string) (Permutation, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "()" {
		return Identity(n), nil
	}

	var cycles [][]int
	rest := s
	for rest != "" {
		if rest[0] != '(' {
			return Permutation{}, fmt.Errorf("expected '(' at %q: %w", rest, ErrInvalidCycles)
		}
		close := strings.IndexByte(rest, ')')
		if close < 0 {
			return Permutation{}, fmt.Errorf("unclosed cycle in %q: %w", s, ErrInvalidCycles)
		}
		body := strings.ReplaceAll(rest[1:close], ",", " ")
		var cycle []int
		for _, field := range strings.Fields(body) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return Permutation{}, fmt.Errorf("bad index %q: %w", field, ErrInvalidCycles)
			}
			cycle = append(cycle, v)
		}
		if len(cycle) == 0 {
			return Permutation{}, fmt.Errorf("empty cycle in %q: %w", s, ErrInvalidCycles)
		}
		cycles = append(cycles, cycle)
		rest = strings.TrimSpace(rest[close+1:])
	}

	return FromCycles(n, cycles)
}
