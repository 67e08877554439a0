// SPDX-License-Identifier: MIT
// Package matrix: deterministic linear-algebra kernels on Dense.
// All kernels validate fail-fast via the central validators, never mutate
// their inputs, allocate exactly one result, and use fixed loop orders so
// identical inputs produce identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping; no magic strings.
const (
	opAdd          = "Add"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opSymmetrize   = "Symmetrize"
	opSubmatrix    = "Submatrix"
	opSetSubmatrix = "SetSubmatrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w for errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: single flat 0..n-1 loop.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for idx := 0; idx < len(res.data); idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := 0; idx < len(res.data); idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Determinism: fixed i→k→j loop order with row-major strides; zero entries
// of A are skipped, which matters for the block-sparse bases this library
// multiplies.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Determinism: fixed i→j copy order.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Symmetrize returns (M + Mᵀ)/2 for a square matrix, the standard repair for
// asymmetry accumulated through floating-point error.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(n²).
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = (m.data[i*n+j] + m.data[j*n+i]) / 2
		}
	}

	return res, nil
}

// Submatrix gathers the rectangular block m[rows, cols] into a fresh
// len(rows)×len(cols) Dense, preserving the order of the index lists.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty list),
// ErrIndexOutOfBounds.
// Complexity: Time O(len(rows)*len(cols)).
func Submatrix(m *Dense, rows, cols []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndexList(rows, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndexList(cols, m.c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	res, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	var i, j, base int
	for i = 0; i < len(rows); i++ { // fixed gather order
		base = rows[i] * m.c
		for j = 0; j < len(cols); j++ {
			res.data[i*len(cols)+j] = m.data[base+cols[j]]
		}
	}

	return res, nil
}

// SetSubmatrix scatters src into dst at the positions dst[rows, cols],
// the inverse of Submatrix. src must be len(rows)×len(cols).
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrIndexOutOfBounds,
// ErrDimensionMismatch (src shape).
// Complexity: Time O(len(rows)*len(cols)).
func SetSubmatrix(dst *Dense, rows, cols []int, src *Dense) error {
	if dst == nil || src == nil {
		return matrixErrorf(opSetSubmatrix, ErrNilMatrix)
	}
	if err := ValidateIndexList(rows, dst.r); err != nil {
		return matrixErrorf(opSetSubmatrix, err)
	}
	if err := ValidateIndexList(cols, dst.c); err != nil {
		return matrixErrorf(opSetSubmatrix, err)
	}
	if src.r != len(rows) || src.c != len(cols) {
		return matrixErrorf(opSetSubmatrix, ErrDimensionMismatch)
	}
	var i, j, base int
	for i = 0; i < len(rows); i++ { // fixed scatter order
		base = rows[i] * dst.c
		for j = 0; j < len(cols); j++ {
			dst.data[base+cols[j]] = src.data[i*len(cols)+j]
		}
	}

	return nil
}

// FrobeniusNorm returns sqrt(sum m[i,j]²), or 0 for a nil matrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(m *Dense) float64 {
	if m == nil {
		return 0
	}
	var sum float64
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// IsNonZero reports whether the Frobenius norm of m exceeds tol: the
// tolerance-based "does this block carry signal" test used to decide
// whether two candidate subspaces interact.
// Complexity: Time O(r*c).
func IsNonZero(m *Dense, tol float64) bool {
	return FrobeniusNorm(m) > tol
}
