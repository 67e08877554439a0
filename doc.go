// Package isotypic decomposes finite-dimensional matrix representations
// into their isotypic components — the canonical coarsest decomposition
// into subspaces of mutually equivalent irreducible pieces.
//
// 🚀 What is isotypic?
//
//	A deterministic-by-seed, pure-Go library built around the randomized
//	two-sample decomposition method:
//		• Numeric kernel: dense matrices, Jacobi eigendecomposition,
//		  general complex spectra, gather/scatter block plumbing
//		• Partitions: index partitions & connected components
//		• Algebra: the commutant of a signed-permutation representation —
//		  sampling, projection, fiber restriction
//		• Decomposer: block eigendecomposition, tolerance grouping,
//		  component refinement and a real-type classification heuristic
//
// ✨ Why choose isotypic?
//
//   - Minimal API – build an algebra from generator matrices, call Decompose
//   - Reproducible – inject a seeded rand source, get identical bases
//   - Rock-solid failure modes – degeneracy surfaces as typed errors,
//     never as a silently wrong grouping
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	matrix/    — dense numeric kernel & eigensolvers
//	partition/ — index partitions & connected components
//	algebra/   — signed-permutation commutant algebras
//	isodec/    — the isotypic decomposer & component queries
//
// Quick example — the rotation representation of a 5-cycle splits into
// the trivial line plus two irreducible planes:
//
//	rep, _ := algebra.NewGeneratorRep(algebra.Real, []*matrix.Dense{cycle5})
//	alg, _ := algebra.ForRep(rep)
//	d, _ := isodec.Decompose(alg, isodec.WithRand(rng))
//	// d.RepDim(r), d.RepMul(r), d.CompBasis(r), d.RepIsReal(r) ...
//
//	go get github.com/katalvlaran/isotypic
package isotypic
