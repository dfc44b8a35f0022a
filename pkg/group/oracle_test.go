package group

import (
	"context"
	"testing"

	"github.com/matzehuels/permtower/pkg/perm"
)

func TestOracle_IsMember(t *testing.T) {
	oracle, err := NewOracle()
	if err != nil {
		t.Fatalf("NewOracle returned error: %v", err)
	}

	tests := []struct {
		name string
		p    perm.Permutation
		want bool
	}{
		{"identity", perm.Identity(5), true},
		{"3-cycle", perm.MustFromSlice([]int{1, 2, 0, 3, 4}), true},
		{"transposition", perm.MustFromSlice([]int{1, 0, 2, 3, 4}), false},
		{"wrong degree", perm.Identity(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oracle.IsMember(tt.p); got != tt.want {
				t.Errorf("IsMember(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestOracle_Ambient(t *testing.T) {
	oracle, err := NewOracle()
	if err != nil {
		t.Fatal(err)
	}
	if got := oracle.Ambient().Order(); got != 60 {
		t.Errorf("Ambient().Order() = %d, want 60", got)
	}
}

func TestIsSimpleOnFive(t *testing.T) {
	simple, err := IsSimpleOnFive(context.Background())
	if err != nil {
		t.Fatalf("IsSimpleOnFive returned error: %v", err)
	}
	if !simple {
		t.Error("IsSimpleOnFive() = false, want true")
	}
}

// The case table behind the simplicity proof: every nontrivial element of A5
// has cycle type {2,2,1}, {3,1,1}, or {5}, and each type's normal closure is
// the whole group.
func TestA5_CaseTable(t *testing.T) {
	a5, err := Alternating(5)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[string]int)
	for _, g := range a5.Elements() {
		if g.IsIdentity() {
			continue
		}
		counts[g.CycleType().String()]++
	}

	want := map[string]int{
		"{2,2,1}": 15,
		"{3,1,1}": 20,
		"{5}":     24,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("A5 has %d elements of type %s, want %d", counts[typ], typ, n)
		}
	}
	for typ := range counts {
		if _, ok := want[typ]; !ok {
			t.Errorf("A5 has unexpected cycle type %s", typ)
		}
	}
}

// By contrast A4 is not simple, so the same saturation machinery must find
// its proper normal subgroup. This guards against the oracle passing
// vacuously.
func TestA4_NotSimple(t *testing.T) {
	a4, _ := Alternating(4)
	double := perm.MustFromSlice([]int{1, 0, 3, 2}) // (0 1)(2 3)

	closure, err := NormalClosure(context.Background(), []perm.Permutation{double}, a4)
	if err != nil {
		t.Fatal(err)
	}
	if closure.Order() <= 1 || closure.Order() >= a4.Order() {
		t.Fatalf("closure order = %d, expected a proper nontrivial subgroup of A4", closure.Order())
	}
}
