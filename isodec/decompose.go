// SPDX-License-Identifier: MIT
// Package isodec: Phases 1–2 and the Decomposition record.

package isodec

import (
	"math"
	"sort"

	"github.com/katalvlaran/isotypic/algebra"
	"github.com/katalvlaran/isotypic/matrix"
	"github.com/katalvlaran/isotypic/partition"
)

const opDecompose = "Decompose"

// Decomposition is the result of Decompose: an orthonormal basis of the
// representation space grouped into isotypic components. Values are
// immutable; accessors return copies. The record references (does not
// copy) the algebra it was computed for.
type Decomposition struct {
	alg  *algebra.Algebra
	opts Options

	u         *matrix.Dense // orthonormal basis, component-major columns
	fromBlock []int         // per column: the fiber block it lives in
	ordered   bool          // true after Refine

	compDims []int // columns per component = repDims[r]*repMuls[r]
	repDims  []int // irreducible dimension per component
	repMuls  []int // multiplicity per component
}

// component is the pre-sort aggregation of interacting runs.
type component struct {
	dim  int
	mul  int
	cols []int // global column positions, run-major
}

// Decompose computes the isotypic decomposition of alg's representation
// space with the randomized two-sample method.
//
// Implementation:
//   - Phase 1: draw one self-adjoint sample of the whole algebra. For each
//     fiber block, eigendecompose its restriction (ascending, symmetrized)
//     and place the local eigenvectors into the global basis U; group each
//     block's columns into runs, the connected components of the
//     eigenvalue tolerance adjacency.
//   - Phase 2: draw a second, independent self-adjoint sample, compress it
//     as Uᵀ·S2·U and test every run pair for interaction with the
//     Frobenius-norm zero test. Connected components of interacting runs
//     are the isotypic components; within one component every run must
//     have the same size, the shared irreducible dimension.
//   - Ordering: components sort ascending by (dimension, multiplicity),
//     stable; U's columns and the block bookkeeping are permuted to match.
//
// Errors: ErrNilAlgebra, ErrInconsistent (unequal run sizes in one
// component), and numeric errors from the kernel. All-or-nothing: on any
// error no partial result is returned.
//
// Generic-position success is probabilistic; a pinned seed (WithRand)
// makes a run reproducible but a degenerate draw still fails with
// ErrInconsistent rather than returning a wrong grouping.
// Complexity: Time O(n³) eigenwork plus O(runs²·blockSize²) interaction
// tests, Space O(n²).
func Decompose(alg *algebra.Algebra, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	if alg == nil {
		return nil, isodecErrorf(opDecompose, ErrNilAlgebra)
	}

	n := alg.N()
	fibers := alg.Fibers()

	// Phase 1: one shared self-adjoint sample, eigendecomposed per fiber.
	s1, err := alg.SampleSelfAdjoint(o.Rand)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}
	fromBlock := make([]int, n)
	var runs [][]int

	var b, k int
	for b = 0; b < fibers.NumBlocks(); b++ {
		idx := fibers.Block(b)
		sub, err := matrix.Submatrix(s1, idx, idx)
		if err != nil {
			return nil, isodecErrorf(opDecompose, err)
		}
		vals, vecs, err := matrix.SortedEig(sub, matrix.Ascending, true, o.eigTol(), o.MaxSweeps)
		if err != nil {
			return nil, isodecErrorf(opDecompose, err)
		}
		if err = matrix.SetSubmatrix(u, idx, idx, vecs); err != nil {
			return nil, isodecErrorf(opDecompose, err)
		}
		for _, gi := range idx {
			fromBlock[gi] = b
		}
		if o.Gaps != nil {
			for k = 1; k < len(vals); k++ {
				o.Gaps(b, vals[k]-vals[k-1])
			}
		}
		blockRuns, err := eigenvalueRuns(vals, o.Tolerance)
		if err != nil {
			return nil, isodecErrorf(opDecompose, err)
		}
		for _, local := range blockRuns {
			run := make([]int, len(local))
			for k = range local {
				run[k] = idx[local[k]] // local eigencolumn → global position
			}
			runs = append(runs, run)
		}
	}

	// Phase 2: second sample, compressed into the Phase-1 basis.
	s2, err := alg.SampleSelfAdjoint(o.Rand)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}
	s2p, err := compress(u, s2)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}

	numRuns := len(runs)
	adj := make([][]bool, numRuns)
	for i := range adj {
		adj[i] = make([]bool, numRuns)
	}
	var i, j int
	var hit bool
	for i = 0; i < numRuns; i++ {
		for j = i; j < numRuns; j++ {
			cross, err := matrix.Submatrix(s2p, runs[i], runs[j])
			if err != nil {
				return nil, isodecErrorf(opDecompose, err)
			}
			hit = matrix.IsNonZero(cross, o.Tolerance)
			adj[i][j], adj[j][i] = hit, hit
		}
	}
	grouping, err := partition.ConnectedComponents(adj)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}

	comps := make([]component, 0, grouping.NumBlocks())
	var c int
	for c = 0; c < grouping.NumBlocks(); c++ {
		runIDs := grouping.Block(c)
		dim := len(runs[runIDs[0]])
		cols := make([]int, 0, dim*len(runIDs))
		for _, rid := range runIDs {
			if len(runs[rid]) != dim {
				return nil, isodecErrorf(opDecompose, ErrInconsistent)
			}
			cols = append(cols, runs[rid]...)
		}
		comps = append(comps, component{dim: dim, mul: len(runIDs), cols: cols})
	}

	// Published ordering contract: ascending by (dimension, multiplicity),
	// stable so ties keep their discovery order.
	sort.SliceStable(comps, func(a, b int) bool {
		if comps[a].dim != comps[b].dim {
			return comps[a].dim < comps[b].dim
		}
		return comps[a].mul < comps[b].mul
	})

	perm := make([]int, 0, n)
	compDims := make([]int, len(comps))
	repDims := make([]int, len(comps))
	repMuls := make([]int, len(comps))
	for c = range comps {
		perm = append(perm, comps[c].cols...)
		compDims[c] = comps[c].dim * comps[c].mul
		repDims[c] = comps[c].dim
		repMuls[c] = comps[c].mul
	}
	sortedU, err := matrix.Submatrix(u, allIndices(n), perm)
	if err != nil {
		return nil, isodecErrorf(opDecompose, err)
	}
	sortedFrom := make([]int, n)
	for p, col := range perm {
		sortedFrom[p] = fromBlock[col]
	}

	return &Decomposition{
		alg:       alg,
		opts:      o,
		u:         sortedU,
		fromBlock: sortedFrom,
		compDims:  compDims,
		repDims:   repDims,
		repMuls:   repMuls,
	}, nil
}

// eigenvalueRuns groups positions of ascending-sorted eigenvalues into
// runs: connected components of the pairwise within-tol adjacency.
func eigenvalueRuns(vals []float64, tol float64) ([][]int, error) {
	m := len(vals)
	adj := make([][]bool, m)
	for i := range adj {
		adj[i] = make([]bool, m)
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if math.Abs(vals[i]-vals[j]) <= tol {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}
	p, err := partition.ConnectedComponents(adj)
	if err != nil {
		return nil, err
	}

	out := make([][]int, p.NumBlocks())
	for i = range out {
		out[i] = p.Block(i)
	}

	return out, nil
}

// compress returns Uᵀ·S·U.
func compress(u, s *matrix.Dense) (*matrix.Dense, error) {
	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, err
	}
	tmp, err := matrix.Mul(ut, s)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(tmp, u)
}

// allIndices returns [0..n-1].
func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// Algebra returns the algebra the decomposition was computed for.
func (d *Decomposition) Algebra() *algebra.Algebra { return d.alg }

// Ordered reports whether Refine has ordered the irreducible copies
// inside every component.
func (d *Decomposition) Ordered() bool { return d.ordered }

// NumComponents returns the number of isotypic components.
func (d *Decomposition) NumComponents() int { return len(d.compDims) }

// RepDim returns the irreducible dimension of component r, or 0 when r is
// out of range.
func (d *Decomposition) RepDim(r int) int {
	if r < 0 || r >= len(d.repDims) {
		return 0
	}

	return d.repDims[r]
}

// RepMul returns the multiplicity of component r, or 0 when r is out of
// range.
func (d *Decomposition) RepMul(r int) int {
	if r < 0 || r >= len(d.repMuls) {
		return 0
	}

	return d.repMuls[r]
}

// CompRange returns the half-open column range [start, end) of component
// r in the basis, or (0, 0) when r is out of range.
func (d *Decomposition) CompRange(r int) (int, int) {
	if r < 0 || r >= len(d.compDims) {
		return 0, 0
	}
	start := 0
	for c := 0; c < r; c++ {
		start += d.compDims[c]
	}

	return start, start + d.compDims[r]
}

// Basis returns a copy of the full orthonormal basis U; columns are
// grouped component-major in the published order.
func (d *Decomposition) Basis() *matrix.Dense { return d.u.Clone() }

// CompBasis returns a copy of the n×compDim basis slice of component r,
// or nil when r is out of range.
func (d *Decomposition) CompBasis(r int) *matrix.Dense {
	start, end := d.CompRange(r)
	if start == end {
		return nil
	}
	cols := make([]int, 0, end-start)
	for p := start; p < end; p++ {
		cols = append(cols, p)
	}
	sub, err := matrix.Submatrix(d.u, allIndices(d.alg.N()), cols)
	if err != nil {
		return nil
	}

	return sub
}

// FromBlock returns a copy of the per-column fiber-block bookkeeping.
func (d *Decomposition) FromBlock() []int {
	return append([]int(nil), d.fromBlock...)
}

// contributingBlocks returns the distinct fiber blocks of component r's
// columns, ascending.
func (d *Decomposition) contributingBlocks(r int) []int {
	start, end := d.CompRange(r)
	seen := map[int]bool{}
	var blocks []int
	for p := start; p < end; p++ {
		if !seen[d.fromBlock[p]] {
			seen[d.fromBlock[p]] = true
			blocks = append(blocks, d.fromBlock[p])
		}
	}
	sort.Ints(blocks)

	return blocks
}

// SmallestOrbitInRep returns the fiber block of smallest size among those
// contributing to component r (ties break to the smaller block index),
// or -1 when r is out of range.
func (d *Decomposition) SmallestOrbitInRep(r int) int {
	if r < 0 || r >= len(d.compDims) {
		return -1
	}
	fibers := d.alg.Fibers()
	best := -1
	for _, b := range d.contributingBlocks(r) {
		if best == -1 || len(fibers.Block(b)) < len(fibers.Block(best)) {
			best = b
		}
	}

	return best
}

// compColumnsInBlock returns component r's column positions whose fiber
// block is b, ascending.
func (d *Decomposition) compColumnsInBlock(r, b int) []int {
	start, end := d.CompRange(r)
	var cols []int
	for p := start; p < end; p++ {
		if d.fromBlock[p] == b {
			cols = append(cols, p)
		}
	}

	return cols
}
