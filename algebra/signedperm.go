// SPDX-License-Identifier: MIT
// Package algebra: signed-permutation detection.

package algebra

import (
	"math"

	"github.com/katalvlaran/isotypic/matrix"
)

// signedPermOf decodes a square matrix as a signed permutation: column j
// must hold exactly one entry of magnitude 1 (within tol) at some row
// perm[j], carrying sign[j] = ±1, with every other entry of magnitude at
// most tol; rows must be hit bijectively. The decoded action on basis
// vectors is M·e_j = sign[j]·e_perm[j].
//
// Returns ErrUnsupportedRep when the matrix does not fit that shape.
func signedPermOf(m *matrix.Dense, tol float64) ([]int, []float64, error) {
	n := m.Rows()
	perm := make([]int, n)
	sign := make([]float64, n)
	rowTaken := make([]bool, n)

	var i, j, hit int
	var v, av float64
	for j = 0; j < n; j++ {
		hit = -1
		for i = 0; i < n; i++ {
			v, _ = m.At(i, j)
			av = math.Abs(v)
			switch {
			case av <= tol:
				// structural zero
			case math.Abs(av-1) <= tol:
				if hit >= 0 {
					return nil, nil, ErrUnsupportedRep // two unit entries in one column
				}
				hit = i
				if v > 0 {
					sign[j] = 1
				} else {
					sign[j] = -1
				}
			default:
				return nil, nil, ErrUnsupportedRep // entry neither 0 nor ±1
			}
		}
		if hit < 0 || rowTaken[hit] {
			return nil, nil, ErrUnsupportedRep
		}
		rowTaken[hit] = true
		perm[j] = hit
	}

	return perm, sign, nil
}
