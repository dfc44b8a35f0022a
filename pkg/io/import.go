package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/perm"
)

// ReadPerm decodes a permutation document from r. Only the image array is
// trusted; notation, cycle type, and sign are recomputed. A document whose
// image is not a valid permutation is rejected.
func ReadPerm(r io.Reader) (perm.Permutation, error) {
	var doc PermDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return perm.Permutation{}, fmt.Errorf("decode: %w", err)
	}
	p, err := perm.FromSlice(doc.Image)
	if err != nil {
		return perm.Permutation{}, fmt.Errorf("image: %w", err)
	}
	return p, nil
}

// ReadSubgroup decodes a subgroup document from r, validating each element
// and re-verifying the subgroup axioms. A document whose element set is not
// actually closed is rejected, so a hand-edited file cannot smuggle in a
// non-group.
func ReadSubgroup(r io.Reader) (*group.Subgroup, error) {
	var doc SubgroupDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	elems := make([]perm.Permutation, 0, len(doc.Elements))
	for i, image := range doc.Elements {
		p, err := perm.FromSlice(image)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, p)
	}

	s, err := group.FromElements(doc.Degree, elems)
	if err != nil {
		return nil, fmt.Errorf("subgroup: %w", err)
	}
	return s, nil
}

// ImportSubgroup reads a JSON file at path and returns the decoded subgroup.
// The error wraps the underlying cause with the file path for context.
func ImportSubgroup(path string) (*group.Subgroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSubgroup(f)
}
