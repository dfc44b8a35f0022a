// Package io provides JSON import and export for permutations and
// subgroups, so CLI commands and external tools can round-trip group data.
//
// A permutation document carries the degree, the image array, and derived
// display fields (cycle notation, cycle type, sign). A subgroup document
// carries the degree, the generating set used to produce it, and every
// element's image array. Derived fields are recomputed on import and never
// trusted.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/perm"
)

// PermDoc is the JSON form of a single permutation.
type PermDoc struct {
	Degree    int    `json:"degree"`
	Image     []int  `json:"image"`
	Notation  string `json:"notation,omitempty"`
	CycleType []int  `json:"cycle_type,omitempty"`
	Sign      int    `json:"sign,omitempty"`
}

// SubgroupDoc is the JSON form of a subgroup.
type SubgroupDoc struct {
	Degree     int       `json:"degree"`
	Order      int       `json:"order"`
	Generators []PermDoc `json:"generators,omitempty"`
	Elements   [][]int   `json:"elements"`
}

// NewPermDoc fills a PermDoc from a permutation, including display fields.
func NewPermDoc(p perm.Permutation) PermDoc {
	return PermDoc{
		Degree:    p.Degree(),
		Image:     p.Image(),
		Notation:  p.String(),
		CycleType: p.CycleType(),
		Sign:      p.Sign(),
	}
}

// WritePerm encodes a permutation as indented JSON to w.
func WritePerm(p perm.Permutation, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewPermDoc(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSubgroup encodes a subgroup and its generating set as indented JSON
// to w. The element list is in canonical order, so output is deterministic.
func WriteSubgroup(s *group.Subgroup, generators []perm.Permutation, w io.Writer) error {
	doc := SubgroupDoc{
		Degree:   s.Degree(),
		Order:    s.Order(),
		Elements: make([][]int, 0, s.Order()),
	}
	for _, g := range generators {
		doc.Generators = append(doc.Generators, NewPermDoc(g))
	}
	for _, e := range s.Elements() {
		doc.Elements = append(doc.Elements, e.Image())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSubgroup writes a subgroup to a JSON file at path.
// This is a convenience wrapper around [WriteSubgroup] for file-based output.
func ExportSubgroup(s *group.Subgroup, generators []perm.Permutation, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSubgroup(s, generators, f)
}
