package perm_test

import (
	"fmt"

	"github.com/matzehuels/permtower/pkg/perm"
)

func ExampleParse() {
	// The double transposition (0 4)(1 3) on five points
	p, _ := perm.Parse(5, "(0 4)(1 3)")
	fmt.Println("image:", p.Image())
	fmt.Println("type: ", p.CycleType())
	fmt.Println("sign: ", p.Sign())
	// Output:
	// image: [4 3 2 1 0]
	// type:  {2,2,1}
	// sign:  1
}

func ExamplePermutation_Cycles() {
	p := perm.MustFromSlice([]int{1, 2, 0, 3, 4})
	for _, cycle := range p.Cycles() {
		fmt.Println(cycle)
	}
	// Output:
	// [0 1 2]
	// [3]
	// [4]
}

func ExampleCompose() {
	// Compose applies the right permutation first: (p∘q)(i) = p(q(i))
	p, _ := perm.Parse(3, "(0 1)")
	q, _ := perm.Parse(3, "(1 2)")
	pq, _ := perm.Compose(p, q)
	fmt.Println(pq)
	// Output:
	// (0 1 2)
}

func ExamplePermutation_Sign() {
	fourCycle, _ := perm.Parse(5, "(0 1 2 3)")
	fiveCycle, _ := perm.Parse(5, "(0 1 2 3 4)")
	fmt.Println("4-cycle:", fourCycle.Sign())
	fmt.Println("5-cycle:", fiveCycle.Sign())
	// Output:
	// 4-cycle: -1
	// 5-cycle: 1
}

func ExampleGenerate() {
	// Generate all permutations of 3 elements
	perms := perm.Generate(3, -1)
	fmt.Println("All permutations of [0,1,2]:")
	for _, p := range perms {
		fmt.Println(p)
	}
	// Output:
	// All permutations of [0,1,2]:
	// [0 1 2]
	// [1 0 2]
	// [2 0 1]
	// [0 2 1]
	// [1 2 0]
	// [2 1 0]
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}
