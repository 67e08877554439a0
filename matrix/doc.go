// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric kernel the isotypic
// decomposition is built on.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with flat backing storage for
//     performance and cache friendliness.
//   - Deterministic linear-algebra kernels (Mul, Transpose, Add, Scale,
//     Symmetrize) with strict fail-fast validation and sentinel errors.
//   - Block plumbing (Submatrix, SetSubmatrix) for algorithms that work on
//     restricted index sets.
//   - A cyclic-Jacobi eigendecomposition for symmetric matrices (Eigen) and
//     its deterministic sorted facade (SortedEig).
//   - General, possibly complex eigenvalues (Eigenvalues) for small
//     nonsymmetric matrices.
//   - Tolerance-based zero tests (FrobeniusNorm, IsNonZero) and symmetric
//     Gaussian sampling with an injectable randomness source.
//
// Every equality in this package is tolerance-based and every tolerance is
// an explicit parameter; there are no module-level knobs and no global
// state. All loop orders are fixed, so identical inputs produce identical
// outputs across runs.
//
// All user-triggered failures are reported through the package sentinel
// errors (errors.go) and matched with errors.Is; kernels never panic on bad
// input.
package matrix
