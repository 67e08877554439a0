// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. Kernels return these sentinels (wrapped once with an operation
// tag at the facade) and tests check them via errors.Is. No kernel panics
// on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrEigenFailed indicates that the Jacobi (or root-finding) routine
	// failed to converge under the given tolerance/iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (e.g. an invalid tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
