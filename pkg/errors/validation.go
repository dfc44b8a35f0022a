package errors

import (
	"strings"
	"unicode"
)

// ValidateDegree validates a permutation degree for the CLI and API
// surfaces. Negative degrees are rejected outright; degrees beyond max are
// rejected with DEGREE_TOO_LARGE so callers can distinguish "nonsense" from
// "too big to enumerate".
func ValidateDegree(n, max int) error {
	if n < 0 {
		return New(ErrCodeInvalidPermutation, "degree cannot be negative: %d", n)
	}
	if max > 0 && n > max {
		return New(ErrCodeDegreeTooLarge, "degree %d exceeds maximum %d", n, max)
	}
	return nil
}

// ValidateNotation performs a cheap sanity check on user-supplied cycle
// notation before it reaches the parser: printable characters only, balanced
// parentheses, bounded length. Full syntactic validation is the parser's job.
func ValidateNotation(s string) error {
	if len(s) > 4096 {
		return New(ErrCodeInvalidNotation, "notation too long (max 4096 characters)")
	}

	depth := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNotation, "notation contains control characters")
		}
		switch r {
		case '(':
			depth++
			if depth > 1 {
				return New(ErrCodeInvalidNotation, "nested parentheses in cycle notation")
			}
		case ')':
			depth--
			if depth < 0 {
				return New(ErrCodeInvalidNotation, "unbalanced ')' in cycle notation")
			}
		}
	}
	if depth != 0 {
		return New(ErrCodeInvalidNotation, "unbalanced '(' in cycle notation")
	}
	return nil
}

// ValidateRecordID validates a store record identifier. IDs are UUIDs in
// practice, but the store only requires a short, path-safe token.
func ValidateRecordID(id string) error {
	if id == "" {
		return New(ErrCodeNotFound, "record ID cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeNotFound, "record ID too long")
	}
	if strings.ContainsAny(id, "/\\ \t\n") {
		return New(ErrCodeNotFound, "record ID contains invalid characters")
	}
	return nil
}
