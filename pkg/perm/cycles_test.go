package perm

import (
	"errors"
	"reflect"
	"testing"
)

func TestCycles_Decomposition(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   [][]int
	}{
		{
			name:   "identity",
			values: []int{0, 1, 2},
			want:   [][]int{{0}, {1}, {2}},
		},
		{
			name:   "five cycle",
			values: []int{1, 2, 3, 4, 0},
			want:   [][]int{{0, 1, 2, 3, 4}},
		},
		{
			name:   "double transposition",
			values: []int{4, 3, 2, 1, 0},
			want:   [][]int{{0, 4}, {1, 3}, {2}},
		},
		{
			name:   "three cycle with fixed points",
			values: []int{1, 2, 0, 3, 4},
			want:   [][]int{{0, 1, 2}, {3}, {4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustFromSlice(tt.values).Cycles()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cycles(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

// Every index appears in exactly one cycle, cycles lead with their smallest
// element, and following each cycle reproduces the permutation.
func TestCycles_PartitionProperty(t *testing.T) {
	All(5, func(p Permutation) bool {
		seen := make([]bool, 5)
		for _, cycle := range p.Cycles() {
			lead := cycle[0]
			for i, v := range cycle {
				if seen[v] {
					t.Fatalf("index %d repeated in cycles of %v", v, p.Image())
				}
				seen[v] = true
				if v < lead {
					t.Errorf("cycle %v of %v does not lead with its smallest element", cycle, p.Image())
				}
				if next := cycle[(i+1)%len(cycle)]; p.Apply(v) != next {
					t.Errorf("cycle %v of %v maps %d to %d, permutation maps to %d",
						cycle, p.Image(), v, next, p.Apply(v))
				}
			}
		}
		for i, ok := range seen {
			if !ok {
				t.Errorf("index %d missing from cycles of %v", i, p.Image())
			}
		}
		return !t.Failed()
	})
}

func TestCycleType(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"()", "{1,1,1,1,1}"},
		{"(0 4)(1 3)", "{2,2,1}"},
		{"(0 1 2)", "{3,1,1}"},
		{"(0 1 2 3 4)", "{5}"},
		{"(0 1)(2 3 4)", "{3,2}"},
	}

	for _, tt := range tests {
		p, err := Parse(5, tt.notation)
		if err != nil {
			t.Fatalf("Parse(5, %q) returned error: %v", tt.notation, err)
		}
		if got := p.CycleType().String(); got != tt.want {
			t.Errorf("CycleType(%s) = %s, want %s", tt.notation, got, tt.want)
		}
	}
}

func TestCycleType_SumsToDegree(t *testing.T) {
	All(6, func(p Permutation) bool {
		if got := p.CycleType().Sum(); got != 6 {
			t.Errorf("CycleType(%v).Sum() = %d, want 6", p.Image(), got)
			return false
		}
		return true
	})
}

func TestType_Accessors(t *testing.T) {
	typ := Type{3, 2, 2, 1}

	if !typ.Equal(Type{3, 2, 2, 1}) {
		t.Error("Equal() = false for identical types")
	}
	if typ.Equal(Type{3, 2, 1}) {
		t.Error("Equal() = true for different types")
	}
	if got := typ.MaxLength(); got != 3 {
		t.Errorf("MaxLength() = %d, want 3", got)
	}
	if got := typ.Count(2); got != 2 {
		t.Errorf("Count(2) = %d, want 2", got)
	}
	if got := (Type{}).MaxLength(); got != 0 {
		t.Errorf("empty MaxLength() = %d, want 0", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		notation string
		want     int
	}{
		{"()", 1},
		{"(0 1)", -1},
		{"(0 1 2)", 1},
		{"(0 1 2 3)", -1},
		{"(0 1 2 3 4)", 1},
		{"(0 4)(1 3)", 1},
		{"(0 1)(2 3 4)", -1},
	}

	for _, tt := range tests {
		p, err := Parse(5, tt.notation)
		if err != nil {
			t.Fatalf("Parse(5, %q) returned error: %v", tt.notation, err)
		}
		if got := p.Sign(); got != tt.want {
			t.Errorf("Sign(%s) = %d, want %d", tt.notation, got, tt.want)
		}
		if got := p.IsEven(); got != (tt.want == 1) {
			t.Errorf("IsEven(%s) = %v, want %v", tt.notation, got, tt.want == 1)
		}
	}
}

// Sign is a homomorphism: sign(p∘q) = sign(p)·sign(q) across all of S4.
func TestSign_Homomorphism(t *testing.T) {
	perms := Generate(4, -1)
	for _, pv := range perms {
		for _, qv := range perms {
			p, q := MustFromSlice(pv), MustFromSlice(qv)
			if got, want := MustCompose(p, q).Sign(), p.Sign()*q.Sign(); got != want {
				t.Fatalf("Sign(%v∘%v) = %d, want %d", pv, qv, got, want)
			}
		}
	}
}

func TestSign_InverseAndConjugationInvariant(t *testing.T) {
	All(5, func(p Permutation) bool {
		if p.Sign() != p.Inverse().Sign() {
			t.Errorf("Sign(%v) differs from Sign of its inverse", p.Image())
		}
		c := MustFromSlice([]int{2, 0, 4, 1, 3})
		conj, _ := p.Conjugate(c)
		if p.Sign() != conj.Sign() {
			t.Errorf("Sign(%v) changed under conjugation", p.Image())
		}
		return !t.Failed()
	})
}

func TestFromCycles(t *testing.T) {
	got, err := FromCycles(5, [][]int{{0, 4}, {1, 3}})
	if err != nil {
		t.Fatalf("FromCycles returned error: %v", err)
	}
	want := MustFromSlice([]int{4, 3, 2, 1, 0})
	if !got.Equal(want) {
		t.Errorf("FromCycles = %v, want %v", got.Image(), want.Image())
	}

	// Omitted fixed points and explicit length-1 cycles agree.
	explicit, err := FromCycles(5, [][]int{{0, 4}, {1, 3}, {2}})
	if err != nil {
		t.Fatalf("FromCycles with explicit fixed point returned error: %v", err)
	}
	if !explicit.Equal(want) {
		t.Errorf("FromCycles with fixed point = %v, want %v", explicit.Image(), want.Image())
	}
}

func TestFromCycles_RoundTrip(t *testing.T) {
	All(5, func(p Permutation) bool {
		back, err := FromCycles(5, p.Cycles())
		if err != nil {
			t.Fatalf("FromCycles(Cycles(%v)) returned error: %v", p.Image(), err)
		}
		if !back.Equal(p) {
			t.Errorf("FromCycles(Cycles(%v)) = %v", p.Image(), back.Image())
			return false
		}
		return true
	})
}

func TestFromCycles_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cycles [][]int
	}{
		{"out of range", [][]int{{0, 5}}},
		{"negative", [][]int{{-1, 2}}},
		{"overlap across cycles", [][]int{{0, 1}, {1, 2}}},
		{"repeat within cycle", [][]int{{0, 1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromCycles(5, tt.cycles); !errors.Is(err, ErrInvalidCycles) {
				t.Errorf("FromCycles(5, %v) error = %v, want ErrInvalidCycles", tt.cycles, err)
			}
		})
	}
}

func TestTransposition(t *testing.T) {
	p, err := Transposition(5, 1, 3)
	if err != nil {
		t.Fatalf("Transposition returned error: %v", err)
	}
	if got := p.String(); got != "(1 3)" {
		t.Errorf("Transposition(5, 1, 3) = %s, want (1 3)", got)
	}
	if p.Sign() != -1 {
		t.Error("transposition is not odd")
	}

	if _, err := Transposition(5, 2, 2); !errors.Is(err, ErrInvalidCycles) {
		t.Errorf("Transposition(5, 2, 2) error = %v, want ErrInvalidCycles", err)
	}
}
