// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/isotypic/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from row-major data or fails the test.
func mustDense(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

// requireMatEqual asserts element-wise equality within tol.
func requireMatEqual(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, wv, gv, tol, "mismatch at (%d,%d)", i, j)
		}
	}
}

// TestMul checks a hand-computed product and the inner-dimension guard.
func TestMul(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want := mustDense(t, 2, 2, []float64{58, 64, 139, 154})
	requireMatEqual(t, want, got, 1e-12)

	_, err = matrix.Mul(a, a) // 2x3 times 2x3: inner mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTransposeAndSymmetrize verifies mᵀ and (m+mᵀ)/2.
func TestTransposeAndSymmetrize(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireMatEqual(t, mustDense(t, 2, 2, []float64{1, 3, 2, 4}), mt, 0)

	sym, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	requireMatEqual(t, mustDense(t, 2, 2, []float64{1, 2.5, 2.5, 4}), sym, 0)

	_, err = matrix.Symmetrize(mustDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestAddScale covers element-wise addition and scaling.
func TestAddScale(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{4, 3, 2, 1})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireMatEqual(t, mustDense(t, 2, 2, []float64{5, 5, 5, 5}), sum, 0)

	twice, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	requireMatEqual(t, mustDense(t, 2, 2, []float64{2, 4, 6, 8}), twice, 0)
}

// TestSubmatrixRoundTrip verifies gather and scatter agree.
func TestSubmatrixRoundTrip(t *testing.T) {
	m := mustDense(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	sub, err := matrix.Submatrix(m, []int{0, 2}, []int{1, 2})
	require.NoError(t, err)
	requireMatEqual(t, mustDense(t, 2, 2, []float64{2, 3, 8, 9}), sub, 0)

	// Scatter it back after doubling.
	doubled, err := matrix.Scale(sub, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.SetSubmatrix(m, []int{0, 2}, []int{1, 2}, doubled))
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 18.0, v)

	// Invalid indices and shapes are rejected.
	_, err = matrix.Submatrix(m, []int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = matrix.SetSubmatrix(m, []int{0}, []int{0}, sub)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFrobeniusAndIsNonZero checks the tolerance-based zero test.
func TestFrobeniusAndIsNonZero(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{3, 0, 4, 0})
	require.InDelta(t, 5.0, matrix.FrobeniusNorm(m), 1e-12)

	tiny := mustDense(t, 2, 2, []float64{1e-12, 0, 0, 1e-12})
	require.False(t, matrix.IsNonZero(tiny, 1e-9))
	require.True(t, matrix.IsNonZero(m, 1e-9))
	require.False(t, matrix.IsNonZero(nil, 1e-9))
	require.Equal(t, 0.0, matrix.FrobeniusNorm(nil))
}
