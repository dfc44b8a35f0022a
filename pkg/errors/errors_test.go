package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPermutation, "bad image: %v", []int{0, 0})

	if !Is(err, ErrCodeInvalidPermutation) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNotConjugate) {
		t.Error("Is() = true for different code")
	}
	if GetCode(err) != ErrCodeInvalidPermutation {
		t.Errorf("GetCode() = %s, want INVALID_PERMUTATION", GetCode(err))
	}
	if !strings.Contains(err.Error(), "INVALID_PERMUTATION") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "persist record %s", "abc")

	if !Is(err, ErrCodeStore) {
		t.Error("Is() = false for wrapped error's code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from the error chain")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs_NonStructuredError(t *testing.T) {
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for a plain error")
	}
	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode() nonempty for a plain error")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNotConjugate, "cycle types differ")
	if got := UserMessage(err); got != "cycle types differ" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want plain", got)
	}
}

func TestValidateDegree(t *testing.T) {
	if err := ValidateDegree(5, 10); err != nil {
		t.Errorf("ValidateDegree(5, 10) = %v, want nil", err)
	}
	if err := ValidateDegree(-1, 10); !Is(err, ErrCodeInvalidPermutation) {
		t.Errorf("ValidateDegree(-1, 10) = %v, want INVALID_PERMUTATION", err)
	}
	if err := ValidateDegree(11, 10); !Is(err, ErrCodeDegreeTooLarge) {
		t.Errorf("ValidateDegree(11, 10) = %v, want DEGREE_TOO_LARGE", err)
	}
	// max <= 0 disables the cap
	if err := ValidateDegree(100, 0); err != nil {
		t.Errorf("ValidateDegree(100, 0) = %v, want nil", err)
	}
}

func TestValidateNotation(t *testing.T) {
	valid := []string{"", "()", "(0 1)(2 3)", "(0,1,2)"}
	for _, s := range valid {
		if err := ValidateNotation(s); err != nil {
			t.Errorf("ValidateNotation(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"(0 1", "0 1)", "((0 1))", "(0\x001)", strings.Repeat("(0 1)", 1000)}
	for _, s := range invalid {
		if err := ValidateNotation(s); !Is(err, ErrCodeInvalidNotation) {
			t.Errorf("ValidateNotation(%q) = %v, want INVALID_NOTATION", s, err)
		}
	}
}

func TestValidateRecordID(t *testing.T) {
	if err := ValidateRecordID("550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("ValidateRecordID(uuid) = %v, want nil", err)
	}

	invalid := []string{"", "a/b", "a b", strings.Repeat("x", 65)}
	for _, id := range invalid {
		if err := ValidateRecordID(id); !Is(err, ErrCodeNotFound) {
			t.Errorf("ValidateRecordID(%q) = %v, want NOT_FOUND", id, err)
		}
	}
}
