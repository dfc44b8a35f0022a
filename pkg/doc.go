// Package pkg provides the core libraries for Permtower finite
// permutation-group computation.
//
// # Overview
//
// Permtower works with permutations of {0, ..., n−1}: cycle structure,
// parity, conjugacy witnesses, normal closures, and structural facts such as
// the simplicity of the alternating group on five points. The pkg directory
// is organized into three main areas:
//
//  1. [perm] / [group] - Domain logic (permutations, cycle decomposition,
//     conjugacy, closures, the A5 oracle)
//  2. [cache] / [store] / [config] - Infrastructure (memoization backends,
//     result persistence, TOML configuration)
//  3. [api] / [render] / [io] - Surfaces (HTTP API, Graphviz diagrams,
//     JSON import/export)
//
// # Architecture
//
// The typical data flow through Permtower:
//
//	cycle notation / image array
//	         ↓
//	    [perm] package (parse, compose, decompose, sign)
//	         ↓
//	    [group] package (subgroups, conjugators, normal closures)
//	         ↓
//	    [render] / [io] / [api] output
//
// # Quick Start
//
// Decompose a permutation and saturate a normal closure:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/permtower/pkg/group"
//	    "github.com/matzehuels/permtower/pkg/perm"
//	)
//
//	// 1. Parse a permutation of degree 5
//	p, _ := perm.Parse(5, "(0 1 2)")
//	fmt.Println(p.CycleType(), p.Sign()) // {3,1,1} 1
//
//	// 2. Saturate its normal closure in A5
//	a5, _ := group.Alternating(5)
//	closure, _ := group.NormalClosure(context.Background(), []perm.Permutation{p}, a5)
//	fmt.Println(closure.Order()) // 60
//
// # Main Packages
//
// ## Domain Logic
//
// [perm] - Immutable permutations with composition, inversion, powers,
// conjugation, disjoint cycle decomposition, cycle types, sign, cycle
// notation parsing/printing, and Heap's-algorithm enumeration of S_n.
//
// [group] - Enumerated subgroups of S_n, conjugacy testing and conjugator
// construction (in S_n and in A_n), normal-closure saturation, and the
// oracle that verifies the simplicity of A5 computationally.
//
// ## Infrastructure
//
// [cache] - Memoization backends for closure results: file (CLI), memory
// (testing), redis (server deployments), and null. Keys are derived from
// canonical cycle notation via [cache.Keyer].
//
// [store] - Persistence of closure records for the API server: memory for
// development, MongoDB for deployments.
//
// [config] - TOML configuration with XDG-aware defaults.
//
// [observability] - Hook interfaces (saturation rounds, cache traffic, HTTP
// requests) with no-op defaults, so instrumentation stays optional.
//
// [errors] - Coded errors shared by every surface; codes map to CLI messages
// and HTTP statuses.
//
// ## Surfaces
//
// [api] - chi-based JSON API: sign, conjugacy, closures (persisted and
// listable), and the A5 simplicity check.
//
// [render] - Graphviz cycle diagrams and Cayley graphs, rendered to DOT,
// SVG, or PNG.
//
// [io] - JSON documents for permutations and subgroups, with re-validation
// on import.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/group/...    # Specific package
//	go test -run Example       # Examples only
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/perm
// [group]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/group
// [cache]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/cache
// [cache.Keyer]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/cache#Keyer
// [store]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/errors
// [api]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/api
// [render]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/permtower/pkg/io
package pkg
