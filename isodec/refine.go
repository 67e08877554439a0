// SPDX-License-Identifier: MIT
// Package isodec: Phase 3, ordering the copies inside each component.

package isodec

import (
	"github.com/katalvlaran/isotypic/matrix"
)

const opRefine = "Refine"

// Refine orders the individual irreducible copies inside every component
// and returns a new Decomposition with Ordered() true; the receiver is
// left untouched. Options override the settings Decompose ran with (the
// randomness source is shared by default, so a seeded pipeline stays
// reproducible end to end).
//
// Implementation, per component r and per fiber block b contributing
// to it:
//   - B: the n_b×k slice of the basis living in block b and component r.
//   - T = B·G·Bᵀ with G a fresh k×k symmetric Gaussian: a generic
//     self-adjoint operator supported on the slice's span.
//   - P: projection of T onto the algebra restricted to fiber b,
//     symmetrized: the nearest commutant element seen inside the block.
//   - W = Bᵀ·P·B, eigendecomposed descending: its eigenbasis V separates
//     the copies, and B·V replaces the slice.
//
// In the refined basis every self-adjoint algebra element is
// block-diagonal within each component with RepMul copies of a
// RepDim×RepDim block. Refine does NOT align the copies to one shared
// sub-basis; that is a further irreducible-decomposition stage this
// package does not perform.
//
// Errors: numeric errors from the kernel and restriction errors from the
// algebra, all-or-nothing.
func (d *Decomposition) Refine(opts ...Option) (*Decomposition, error) {
	o := d.opts
	for _, opt := range opts {
		opt(&o)
	}

	fibers := d.alg.Fibers()
	refined := d.u.Clone()

	var r int
	for r = 0; r < d.NumComponents(); r++ {
		for _, b := range d.contributingBlocks(r) {
			cols := d.compColumnsInBlock(r, b)
			rows := fibers.Block(b)

			basis, err := matrix.Submatrix(d.u, rows, cols)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			g, err := matrix.SymmetricGaussian(len(cols), o.Rand)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			bt, err := matrix.Transpose(basis)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			bg, err := matrix.Mul(basis, g)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			t, err := matrix.Mul(bg, bt)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}

			sub, _, err := d.alg.RestrictToFibers([]int{b})
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			p, err := sub.Project(t)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			p, err = matrix.Symmetrize(p)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}

			pb, err := matrix.Mul(p, basis)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			w, err := matrix.Mul(bt, pb)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			_, v, err := matrix.SortedEig(w, matrix.Descending, true, o.eigTol(), o.MaxSweeps)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			newBasis, err := matrix.Mul(basis, v)
			if err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
			if err = matrix.SetSubmatrix(refined, rows, cols, newBasis); err != nil {
				return nil, isodecErrorf(opRefine, err)
			}
		}
	}

	return &Decomposition{
		alg:       d.alg,
		opts:      o,
		u:         refined,
		fromBlock: append([]int(nil), d.fromBlock...),
		ordered:   true,
		compDims:  append([]int(nil), d.compDims...),
		repDims:   append([]int(nil), d.repDims...),
		repMuls:   append([]int(nil), d.repMuls...),
	}, nil
}
