// SPDX-License-Identifier: MIT
// Package isodec: real-type classification heuristic.

package isodec

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/isotypic/matrix"
	"github.com/katalvlaran/isotypic/partition"
)

const opRepIsReal = "RepIsReal"

// RepIsReal reports whether component r's irreducible representation is
// of real type. Heuristic, not an algebraic proof: on the smallest fiber
// block contributing to r, a generic (nonsymmetric) algebra sample is
// compressed onto the component's basis slice; the representation is real
// exactly when the compressed sample has as many distinct-eigenvalue
// clusters as its symmetrization. A complex or quaternionic commutant
// contributes rotation-like parameters whose complex eigenvalue pairs
// collapse under symmetrization, lowering the symmetric cluster count.
//
// Clustering runs at the cube root of the grouping tolerance: a repeated
// eigenvalue of multiplicity m is only computed to O(ε^(1/m)) accuracy by
// the nonsymmetric kernel, and the compressed sample repeats each value
// RepDim(r) times, so the cluster scale has to sit above that noise while
// staying far below generic eigenvalue separations.
// Cluster sizes within each of the two spectra must be uniform; a
// violation fails with ErrInconsistent (tolerance misconfiguration or a
// degenerate draw).
//
// Errors: ErrBadComponent, ErrInconsistent, numeric errors from the
// kernel.
func (d *Decomposition) RepIsReal(r int, opts ...Option) (bool, error) {
	if r < 0 || r >= d.NumComponents() {
		return false, isodecErrorf(opRepIsReal, ErrBadComponent)
	}
	o := d.opts
	for _, opt := range opts {
		opt(&o)
	}

	b := d.SmallestOrbitInRep(r)
	rows := d.alg.Fibers().Block(b)
	cols := d.compColumnsInBlock(r, b)

	basis, err := matrix.Submatrix(d.u, rows, cols)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	sub, _, err := d.alg.RestrictToFibers([]int{b})
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	x, err := sub.Sample(o.Rand) // generic, deliberately not symmetrized
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}

	// A = Bᵀ·X·B: the generic sample seen on the component's slice.
	bt, err := matrix.Transpose(basis)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	xb, err := matrix.Mul(x, basis)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	a, err := matrix.Mul(bt, xb)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}

	clusterTol := math.Cbrt(o.Tolerance)

	// Spectrum of the generic compression (possibly complex).
	spectrum, err := matrix.Eigenvalues(a, o.eigTol())
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	genericClusters, err := countClusters(spectrum, clusterTol)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}

	// Spectrum of the symmetrization (real).
	as, err := matrix.Symmetrize(a)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	symVals, _, err := matrix.Eigen(as, o.eigTol(), o.MaxSweeps)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}
	symSpectrum := make([]complex128, len(symVals))
	for i, v := range symVals {
		symSpectrum[i] = complex(v, 0)
	}
	symClusters, err := countClusters(symSpectrum, clusterTol)
	if err != nil {
		return false, isodecErrorf(opRepIsReal, err)
	}

	return genericClusters == symClusters, nil
}

// countClusters groups a spectrum into tolerance clusters and returns the
// cluster count. Non-uniform cluster sizes are fatal: a generic draw
// always splits the spectrum evenly, so unevenness means the tolerance
// cannot separate the clusters.
func countClusters(spectrum []complex128, tol float64) (int, error) {
	m := len(spectrum)
	adj := make([][]bool, m)
	for i := range adj {
		adj[i] = make([]bool, m)
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if cmplx.Abs(spectrum[i]-spectrum[j]) <= tol {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}
	p, err := partition.ConnectedComponents(adj)
	if err != nil {
		return 0, err
	}

	size := len(p.Block(0))
	for i = 1; i < p.NumBlocks(); i++ {
		if len(p.Block(i)) != size {
			return 0, ErrInconsistent
		}
	}

	return p.NumBlocks(), nil
}
