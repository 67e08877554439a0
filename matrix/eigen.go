// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigendecomposition.
//
// Eigen runs cyclic Jacobi sweeps: every strict upper-triangle pair (p,q)
// is rotated once per sweep in fixed p→q order, so convergence is governed
// by the sweep budget and the result is bit-reproducible for identical
// inputs. SortedEig is the facade the decomposition algorithm consumes: it
// adds optional symmetrization, a deterministic eigenvalue ordering and a
// canonical eigenvector sign.

package matrix

import (
	"math"
	"sort"
)

const (
	opEigen     = "Eigen"
	opSortedEig = "SortedEig"
)

// DefaultMaxSweeps is the default cyclic-Jacobi sweep budget. Jacobi
// converges quadratically once rotations are small; a few dozen sweeps is
// ample for the matrix sizes this library targets.
const DefaultMaxSweeps = 64

// SortOrder selects the eigenvalue ordering produced by SortedEig.
type SortOrder int

const (
	// Ascending orders eigenvalues from smallest to largest.
	Ascending SortOrder = iota
	// Descending orders eigenvalues from largest to smallest.
	Descending
)

// maxOffDiagonal returns max_{i<j} |a[i,j]| for a square Dense.
// Complexity: O(n²).
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	var i, j int
	var off, maxOff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps, returning (eigenvalues, Q) with A ≈ Q·diag·Qᵀ and
// orthonormal columns in Q.
//
// Implementation:
//   - Stage 1: validate square, symmetric within tol, and the budgets.
//   - Stage 2: sweep all pairs (p,q), p<q, in fixed order, rotating each;
//     stop when max_{i<j}|A[i,j]| ≤ tol.
//
// Inputs:
//   - m: symmetric matrix (within tol); never mutated.
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxSweeps: safety cap on full sweeps (use DefaultMaxSweeps).
//
// Errors:
//   - ErrNonSquare / ErrAsymmetry / ErrNaNInf from validation,
//   - ErrInvalidDimensions when maxSweeps ≤ 0,
//   - ErrEigenFailed when the off-diagonal norm is still above tol after
//     the sweep budget.
//
// Determinism:
//   - Fixed p→q rotation order and fixed update order; stable results.
//
// Complexity:
//   - Time O(maxSweeps · n³), Space O(n²).
func Eigen(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if maxSweeps <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrInvalidDimensions)
	}

	n := m.r
	a := m.Clone()
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Rotations below skipTol cannot move the off-diagonal norm past the
	// convergence test and only risk 0/0 in the angle computation.
	skipTol := tol / float64(n+1)

	var (
		sweep, p, pq, i    int     // sweep counter and pivot indices
		app, aqq, apq      float64 // pivot-plane entries
		aip, aiq, qip, qiq float64 // row/column temporaries
		theta, t, c, s     float64 // rotation parameters
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		// Convergence check once per sweep.
		if maxOffDiagonal(a) <= tol {
			break
		}
		for p = 0; p < n-1; p++ {
			for pq = p + 1; pq < n; pq++ {
				apq = a.data[p*n+pq]
				if math.Abs(apq) <= skipTol {
					continue // nothing to annihilate at this pivot
				}
				app = a.data[p*n+p]
				aqq = a.data[pq*n+pq]

				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)).
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Apply the rotation to A, preserving symmetry explicitly.
				for i = 0; i < n; i++ {
					if i == p || i == pq {
						continue
					}
					aip = a.data[i*n+p]
					aiq = a.data[i*n+pq]
					a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
					a.data[i*n+pq], a.data[pq*n+i] = s*aip+c*aiq, s*aip+c*aiq
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a.data[pq*n+pq] = s*s*app + 2*c*s*apq + c*c*aqq
				a.data[p*n+pq], a.data[pq*n+p] = 0, 0

				// Accumulate the rotation into Q (columns p and pq).
				for i = 0; i < n; i++ {
					qip = q.data[i*n+p]
					qiq = q.data[i*n+pq]
					q.data[i*n+p] = c*qip - s*qiq
					q.data[i*n+pq] = s*qip + c*qiq
				}
			}
		}
	}

	// Final convergence check after the sweep budget.
	if maxOffDiagonal(a) > tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// SortedEig computes a sorted eigendecomposition of a symmetric matrix.
//
// Implementation:
//   - Stage 1: optionally replace m by (m+mᵀ)/2 (symmetrize=true) to repair
//     floating-point asymmetry; otherwise require symmetry within tol.
//   - Stage 2: Jacobi via Eigen, then sort eigenpairs by eigenvalue in the
//     requested direction (stable, index tie-break) and canonicalize each
//     eigenvector's sign so its largest-magnitude entry is positive.
//
// The column order is therefore deterministic for eigenvalues separated by
// more than the numeric noise floor, and the columns stay orthonormal (the
// sort permutes columns, the sign flip preserves norm and orthogonality).
//
// Inputs:
//   - m: square matrix; symmetric within tol unless symmetrize is set.
//   - order: Ascending or Descending.
//   - symmetrize: replace m by (m+mᵀ)/2 before decomposing.
//   - tol: Jacobi convergence threshold (and symmetry tolerance when
//     symmetrize is false).
//   - maxSweeps: sweep budget forwarded to Eigen (use DefaultMaxSweeps).
//
// Errors: same as Eigen.
// Complexity: Time O(maxSweeps·n³ + n² log n), Space O(n²).
func SortedEig(m *Dense, order SortOrder, symmetrize bool, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	work := m
	if symmetrize {
		sym, err := Symmetrize(m)
		if err != nil {
			return nil, nil, matrixErrorf(opSortedEig, err)
		}
		work = sym
	}

	vals, vecs, err := Eigen(work, tol, maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opSortedEig, err)
	}

	// Stable sort of eigenpair indices; ties keep Jacobi's column order.
	n := len(vals)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if order == Descending {
		sort.SliceStable(perm, func(x, y int) bool { return vals[perm[x]] > vals[perm[y]] })
	} else {
		sort.SliceStable(perm, func(x, y int) bool { return vals[perm[x]] < vals[perm[y]] })
	}

	sortedVals := make([]float64, n)
	sortedVecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSortedEig, err)
	}
	var col, row, src int
	var pivot float64
	for col = 0; col < n; col++ {
		src = perm[col]
		sortedVals[col] = vals[src]

		// Canonical sign: the entry of largest magnitude (first occurrence
		// in row order) is made positive.
		pivot = 0
		for row = 0; row < n; row++ {
			if math.Abs(vecs.data[row*n+src]) > math.Abs(pivot) {
				pivot = vecs.data[row*n+src]
			}
		}
		sign := 1.0
		if pivot < 0 {
			sign = -1.0
		}
		for row = 0; row < n; row++ {
			sortedVecs.data[row*n+col] = sign * vecs.data[row*n+src]
		}
	}

	return sortedVals, sortedVecs, nil
}
