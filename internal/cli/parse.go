package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/perm"
)

// parsePermArg turns a command-line argument into a permutation of the given
// degree. Two forms are accepted:
//
//   - cycle notation: "(0 1)(2 3)", "(0,1,2)", "()" for the identity
//   - a comma-separated image array: "1,0,3,2,4"
//
// Anything containing a parenthesis is treated as cycle notation; otherwise
// the argument must be an image array of exactly degree entries.
func parsePermArg(degree int, arg string) (perm.Permutation, error) {
	arg = strings.TrimSpace(arg)

	if strings.ContainsAny(arg, "()") || arg == "" {
		if err := errors.ValidateNotation(arg); err != nil {
			return perm.Permutation{}, err
		}
		p, err := perm.Parse(degree, arg)
		if err != nil {
			return perm.Permutation{}, errors.Wrap(errors.ErrCodeInvalidNotation, err, "parse %q", arg)
		}
		return p, nil
	}

	fields := strings.Split(arg, ",")
	image := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return perm.Permutation{}, errors.New(errors.ErrCodeInvalidPermutation, "bad image entry %q in %q", f, arg)
		}
		image = append(image, v)
	}
	if len(image) != degree {
		return perm.Permutation{}, errors.New(errors.ErrCodeInvalidPermutation,
			"image array has %d entries, expected %d", len(image), degree)
	}
	p, err := perm.FromSlice(image)
	if err != nil {
		return perm.Permutation{}, errors.Wrap(errors.ErrCodeInvalidPermutation, err, "parse %q", arg)
	}
	return p, nil
}

// signWord renders a sign as "+1 (even)" or "−1 (odd)".
func signWord(sign int) string {
	if sign == 1 {
		return "+1 (even)"
	}
	return "-1 (odd)"
}
