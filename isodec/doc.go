// SPDX-License-Identifier: MIT

// Package isodec decomposes the representation space of a
// signed-permutation matrix representation into its isotypic components:
// the canonical coarsest orthogonal decomposition into subspaces that
// every commutant element preserves, one subspace per equivalence class
// of irreducible subrepresentations.
//
// The algorithm is the randomized two-sample method:
//
//   - Phase 1 (Decompose): one self-adjoint sample of the commutant,
//     eigendecomposed fiber block by fiber block; eigenvalue runs within a
//     tolerance are the first approximation to invariant subspaces.
//   - Phase 2 (Decompose): a second, independent self-adjoint sample is
//     compressed into the Phase-1 basis; runs whose cross block is
//     numerically nonzero carry equivalent irreducibles and are merged by
//     connected components. Components are sorted ascending by
//     (irreducible dimension, multiplicity).
//   - Phase 3 (Refine, optional): per component and contributing fiber, a
//     third sampled operator is projected and re-eigendecomposed to order
//     the individual irreducible copies inside the component.
//
// RepIsReal classifies a component's field type with a cluster-counting
// heuristic: on the smallest contributing fiber, a generic (nonsymmetric)
// sample has as many distinct-eigenvalue clusters as its symmetrization
// exactly when the representation is of real type.
//
// Success of the generic-position sampling is probabilistic; a degenerate
// draw or a misconfigured tolerance surfaces as ErrInconsistent rather
// than a wrong answer. Randomness is injected with WithRand so tests can
// pin seeds; there is no global state.
package isodec
