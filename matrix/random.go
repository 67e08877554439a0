// SPDX-License-Identifier: MIT
// Package matrix: random sampling primitives.
// Randomness is always injected by the caller as a *rand.Rand so tests can
// pin seeds; there is no package-level source and no hidden global state.

package matrix

import "math/rand"

const opSymmetricGaussian = "SymmetricGaussian"

// SymmetricGaussian returns a random symmetric n×n matrix whose entries are
// independent (up to symmetry) standard-normal draws from rng: the diagonal
// and the strict upper triangle are sampled, the lower triangle mirrors.
//
// Errors: ErrInvalidDimensions (n ≤ 0), ErrNilMatrix (nil rng).
// Determinism: fixed i→j fill order, so a seeded rng reproduces the matrix.
// Complexity: Time O(n²), Space O(n²).
func SymmetricGaussian(n int, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf(opSymmetricGaussian, ErrNilMatrix)
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetricGaussian, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ { // fixed fill order for reproducibility
		for j = i; j < n; j++ {
			v = rng.NormFloat64()
			m.data[i*n+j] = v
			m.data[j*n+i] = v
		}
	}

	return m, nil
}
