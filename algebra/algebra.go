// SPDX-License-Identifier: MIT
// Package algebra: commutant construction and its operations.

package algebra

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/isotypic/matrix"
	"github.com/katalvlaran/isotypic/partition"
)

const (
	opForRep            = "ForRep"
	opSample            = "Sample"
	opSampleSelfAdjoint = "SampleSelfAdjoint"
	opProject           = "Project"
	opRestrictToFibers  = "RestrictToFibers"
)

// Algebra is the commutant of a signed-permutation representation,
// encoded as the orbit structure of the induced action on index pairs.
// Values are immutable after ForRep.
type Algebra struct {
	rep    Rep
	n      int
	tol    float64
	fibers *partition.Partition

	// Generator action decoded once: ρ(g)·e_j = signs[g][j]·e_perms[g][j].
	perms [][]int
	signs [][]float64

	// Pair-orbit structure over the n² index pairs (p = i·n + j).
	pairOrbit  []int     // pair → orbit id
	pairPhase  []float64 // ±1 phase relative to the orbit's BFS root
	orbitPairs [][]int   // orbit id → member pairs, BFS discovery order
	orbitZero  []bool    // true when phase closure conflicts force zero
}

// ForRep builds the commutant algebra of rep.
//
// Implementation:
//   - Stage 1: validate the adapter and decode every generator image as a
//     signed permutation (one ±1 entry per row and column, within the
//     configured tolerance).
//   - Stage 2: fibers, the connected components of the index set under the
//     generator actions; the finest coordinate partition every generator
//     preserves.
//   - Stage 3: pair orbits, the BFS closure of each index pair (i,j) under
//     (i,j) → (π_g(i), π_g(j)) carrying the phase σ_g(i)·σ_g(j). A pair
//     reached twice with opposite phases forces its whole orbit to zero.
//     Forward closure under the generators suffices: generators of a
//     finite group have finite order, so inverses are positive powers.
//
// A commutant element then holds one free coefficient per non-zero-forced
// orbit: T[p] = coeff[orbit(p)]·phase[p].
//
// Errors:
//   - ErrInvalidRep: nil rep, no generators, nil/non-square/mismatched
//     generator images,
//   - ErrUnsupportedRep: a generator image is not a signed permutation.
//
// Determinism: fixed generator and pair scan orders; identical inputs
// produce identical orbit numbering.
// Complexity: Time O(g·n²) for the closure, Space O(n²).
func ForRep(rep Rep, opts ...Option) (*Algebra, error) {
	o := gatherOptions(opts...)
	if rep == nil || rep.Dimension() <= 0 || rep.NumGenerators() < 1 {
		return nil, algebraErrorf(opForRep, ErrInvalidRep)
	}

	n := rep.Dimension()
	numGens := rep.NumGenerators()
	perms := make([][]int, numGens)
	signs := make([][]float64, numGens)
	var g int
	for g = 0; g < numGens; g++ {
		img := rep.Generator(g)
		if img == nil || img.Rows() != n || img.Cols() != n {
			return nil, algebraErrorf(opForRep, ErrInvalidRep)
		}
		perm, sign, err := signedPermOf(img, o.Tolerance)
		if err != nil {
			return nil, algebraErrorf(opForRep, err)
		}
		perms[g] = perm
		signs[g] = sign
	}

	fibers, err := indexFibers(n, perms)
	if err != nil {
		return nil, algebraErrorf(opForRep, err)
	}

	a := &Algebra{
		rep:    rep,
		n:      n,
		tol:    o.Tolerance,
		fibers: fibers,
		perms:  perms,
		signs:  signs,
	}
	a.buildPairOrbits()

	return a, nil
}

// indexFibers computes the index orbits as connected components of the
// union of all generator permutation graphs.
func indexFibers(n int, perms [][]int) (*partition.Partition, error) {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, perm := range perms {
		for i, pi := range perm {
			if i != pi {
				adj[i][pi] = true
				adj[pi][i] = true
			}
		}
	}

	return partition.ConnectedComponents(adj)
}

// buildPairOrbits runs the BFS phase closure over all n² pairs.
func (a *Algebra) buildPairOrbits() {
	n := a.n
	total := n * n
	a.pairOrbit = make([]int, total)
	a.pairPhase = make([]float64, total)
	for p := range a.pairOrbit {
		a.pairOrbit[p] = -1
	}

	queue := make([]int, 0, total)
	var root, p, q, pi, pj, g int
	var phase float64
	for root = 0; root < total; root++ {
		if a.pairOrbit[root] != -1 {
			continue
		}
		id := len(a.orbitPairs)
		a.pairOrbit[root] = id
		a.pairPhase[root] = 1
		members := []int{root}
		zero := false

		queue = append(queue[:0], root)
		for len(queue) > 0 {
			p = queue[0]
			queue = queue[1:]
			pi, pj = p/n, p%n
			for g = 0; g < len(a.perms); g++ {
				q = a.perms[g][pi]*n + a.perms[g][pj]
				phase = a.pairPhase[p] * a.signs[g][pi] * a.signs[g][pj]
				if a.pairOrbit[q] == -1 {
					a.pairOrbit[q] = id
					a.pairPhase[q] = phase
					members = append(members, q)
					queue = append(queue, q)
				} else if a.pairPhase[q] != phase {
					zero = true // opposite phases on one pair: orbit vanishes
				}
			}
		}
		a.orbitPairs = append(a.orbitPairs, members)
		a.orbitZero = append(a.orbitZero, zero)
	}
}

// N returns the dimension of the representation space.
func (a *Algebra) N() int { return a.n }

// Fibers returns the finest generator-invariant coordinate partition.
func (a *Algebra) Fibers() *partition.Partition { return a.fibers }

// Rep returns the representation adapter the algebra was built from.
func (a *Algebra) Rep() Rep { return a.rep }

// Tolerance returns the detection tolerance the algebra was built with.
func (a *Algebra) Tolerance() float64 { return a.tol }

// Sample returns a generic random element of the algebra: one independent
// N(0,1) coefficient per free pair orbit, propagated along the orbit with
// its phases. Zero-forced orbits contribute nothing.
//
// Errors: ErrNilRand. Determinism: orbits are filled in ascending orbit-id
// order, so a seeded rng reproduces the sample.
func (a *Algebra) Sample(rng *rand.Rand) (*matrix.Dense, error) {
	if rng == nil {
		return nil, algebraErrorf(opSample, ErrNilRand)
	}
	out, err := matrix.NewDense(a.n, a.n)
	if err != nil {
		return nil, algebraErrorf(opSample, err)
	}

	var coeff float64
	for id, members := range a.orbitPairs {
		coeff = rng.NormFloat64() // drawn for every orbit, keeps streams aligned
		if a.orbitZero[id] {
			continue
		}
		for _, p := range members {
			_ = out.Set(p/a.n, p%a.n, coeff*a.pairPhase[p])
		}
	}

	return out, nil
}

// SampleSelfAdjoint returns a random symmetric element: a generic sample
// symmetrized. The commutant of an orthogonal representation is closed
// under transpose, so the result still belongs to the algebra.
//
// Errors: ErrNilRand.
func (a *Algebra) SampleSelfAdjoint(rng *rand.Rand) (*matrix.Dense, error) {
	s, err := a.Sample(rng)
	if err != nil {
		return nil, algebraErrorf(opSampleSelfAdjoint, err)
	}
	sym, err := matrix.Symmetrize(s)
	if err != nil {
		return nil, algebraErrorf(opSampleSelfAdjoint, err)
	}

	return sym, nil
}

// Project returns the orthogonal projection of t onto the algebra under
// the Frobenius inner product: each free orbit is replaced by its
// phase-weighted average, zero-forced orbits by zero. Project is
// idempotent and leaves algebra elements fixed.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shape ≠ n×n).
// Complexity: Time O(n²), Space O(n²).
func (a *Algebra) Project(t *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(t); err != nil {
		return nil, algebraErrorf(opProject, err)
	}
	if t.Rows() != a.n || t.Cols() != a.n {
		return nil, algebraErrorf(opProject, matrix.ErrDimensionMismatch)
	}
	out, err := matrix.NewDense(a.n, a.n)
	if err != nil {
		return nil, algebraErrorf(opProject, err)
	}

	var sum, avg, v float64
	for id, members := range a.orbitPairs {
		if a.orbitZero[id] {
			continue
		}
		sum = 0
		for _, p := range members {
			v, _ = t.At(p/a.n, p%a.n)
			sum += a.pairPhase[p] * v
		}
		avg = sum / float64(len(members))
		for _, p := range members {
			_ = out.Set(p/a.n, p%a.n, avg*a.pairPhase[p])
		}
	}

	return out, nil
}

// RestrictToFibers returns the sub-algebra obtained by keeping only the
// chosen fiber blocks, together with the local→global index map. Fibers
// are generator-invariant, so the generator images restrict exactly and
// the sub-algebra is again a signed-permutation commutant.
//
// The selection is deduplicated-checked and processed in ascending block
// order; the index map concatenates the selected fibers' sorted indices.
//
// Errors: ErrBadFiberSelection (empty, duplicate or out-of-range blocks),
// plus construction errors from the restricted representation.
func (a *Algebra) RestrictToFibers(blocks []int) (*Algebra, []int, error) {
	if len(blocks) == 0 {
		return nil, nil, algebraErrorf(opRestrictToFibers, ErrBadFiberSelection)
	}
	sel := append([]int(nil), blocks...)
	sort.Ints(sel)
	for i, b := range sel {
		if b < 0 || b >= a.fibers.NumBlocks() || (i > 0 && sel[i-1] == b) {
			return nil, nil, algebraErrorf(opRestrictToFibers, ErrBadFiberSelection)
		}
	}

	var idx []int
	for _, b := range sel {
		idx = append(idx, a.fibers.Block(b)...)
	}

	subGens := make([]*matrix.Dense, len(a.perms))
	var g int
	for g = 0; g < a.rep.NumGenerators(); g++ {
		sub, err := matrix.Submatrix(a.rep.Generator(g), idx, idx)
		if err != nil {
			return nil, nil, algebraErrorf(opRestrictToFibers, err)
		}
		subGens[g] = sub
	}
	subRep, err := NewGeneratorRep(a.rep.Field(), subGens)
	if err != nil {
		return nil, nil, algebraErrorf(opRestrictToFibers, err)
	}
	subAlg, err := ForRep(subRep, WithTolerance(a.tol))
	if err != nil {
		return nil, nil, algebraErrorf(opRestrictToFibers, err)
	}

	return subAlg, idx, nil
}
