// SPDX-License-Identifier: MIT

// Package matrix: Dense storage type.
// Dense is the single concrete matrix representation in this library: a
// row-major flat slice of float64. Keeping one concrete type (instead of an
// interface) lets every kernel run its flat-slice fast path unconditionally.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before allocating.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromSlice creates an r×c Dense matrix from row-major data.
// The slice is copied, so the caller keeps ownership of its buffer.
// Returns ErrInvalidDimensions on non-positive shape and
// ErrDimensionMismatch when len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds. Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
