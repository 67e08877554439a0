// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag,
// keeping sentinel identity for errors.Is.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix when m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes both are non-nil (compose with ValidateNotNil).
// Returns ErrDimensionMismatch on violation. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTolerance checks that tol is a finite, non-negative value.
// Returns ErrNaNInf on violation; a negative tolerance is rejected rather
// than silently flipped, since every caller owns its tolerance explicitly.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrNaNInf)
	}

	return nil
}

// ValidateSymmetric checks that m is square and symmetric within tol:
// |m[i,j] - m[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Determinism: fixed i→j upper-triangle scan with fast negative exit.
// Complexity: O(n²), Space O(1).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // scan only the strict upper triangle
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateIndexList ensures every index in list is inside [0, n) and the
// list is non-empty. Used by the Submatrix/SetSubmatrix gather-scatter
// kernels. Errors: ErrIndexOutOfBounds, ErrInvalidDimensions (empty list).
// Complexity: O(len(list)).
func ValidateIndexList(list []int, n int) error {
	if len(list) == 0 {
		return validatorErrorf("ValidateIndexList", ErrInvalidDimensions)
	}
	for _, idx := range list {
		if idx < 0 || idx >= n {
			return validatorErrorf("ValidateIndexList", ErrIndexOutOfBounds)
		}
	}

	return nil
}
