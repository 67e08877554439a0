// SPDX-License-Identifier: MIT

// Package algebra builds the commutant algebra of a signed-permutation
// matrix representation and exposes the sampling, projection and
// restriction operations the isotypic decomposer runs on.
//
// A representation qualifies when every generator image is a
// signed-permutation matrix: exactly one nonzero entry of magnitude 1 per
// row and per column. For such a representation the commutant (all
// matrices T with T·ρ(g) = ρ(g)·T) is exactly the set of matrices that
// are constant up to a ±1 phase on each orbit of the induced action on
// index pairs. ForRep computes that pair-orbit structure once; Sample,
// SampleSelfAdjoint and Project are then cheap orbit traversals.
//
// Fibers are the orbits of the index set itself: the finest coordinate
// partition invariant under every generator. Each fiber is
// generator-invariant, so the algebra restricts exactly to any subset of
// fibers (RestrictToFibers).
//
// Randomness is injected as a *rand.Rand; the package keeps no global
// state and all constructions are deterministic for a fixed input.
package algebra
