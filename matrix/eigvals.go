// SPDX-License-Identifier: MIT
// Package matrix: general (possibly complex) eigenvalues.
//
// Eigenvalues serves the real-type classification heuristic, which needs
// the spectrum of a small nonsymmetric sample. It goes through the
// characteristic polynomial (Faddeev–LeVerrier) and polishes all roots
// simultaneously (Durand–Kerner). That route is simple, allocation-light
// and deterministic, and is entirely adequate for the orbit-restricted
// matrices this library feeds it; it is NOT a general-purpose eigensolver
// for large or ill-conditioned inputs.

package matrix

import (
	"math"
	"math/cmplx"
)

const opEigenvalues = "Eigenvalues"

const (
	// durandKernerMaxIter caps the simultaneous root iteration. The
	// iteration converges quadratically near simple roots and linearly
	// near repeated ones.
	durandKernerMaxIter = 500

	// Stall rule for repeated roots: near a root of multiplicity m the
	// update sizes floor at the polynomial's evaluation-noise level
	// (≈ ε^(1/m)) and never reach tol. Once the largest update has not
	// improved by durandKernerImprove for durandKernerStallLimit
	// consecutive passes while sitting below the tol^(1/4) ceiling, the
	// root cluster is accepted as converged.
	durandKernerStallLimit = 8
	durandKernerImprove    = 0.9
)

// charPoly returns the monic characteristic polynomial coefficients
// [c1..cn] of a (already validated square) matrix via Faddeev–LeVerrier:
// p(λ) = λⁿ + c1·λⁿ⁻¹ + … + cn.
// Complexity: Time O(n⁴), Space O(n²).
func charPoly(a *Dense) []float64 {
	n := a.r
	coeffs := make([]float64, n)

	mk := a.Clone() // M1 = A
	var k, i int
	var trace, ck float64
	for k = 1; k <= n; k++ {
		// c_k = -tr(M_k)/k.
		trace = 0
		for i = 0; i < n; i++ {
			trace += mk.data[i*n+i]
		}
		ck = -trace / float64(k)
		coeffs[k-1] = ck

		if k == n {
			break
		}
		// M_{k+1} = A·(M_k + c_k·I).
		for i = 0; i < n; i++ {
			mk.data[i*n+i] += ck
		}
		next, _ := Mul(a, mk) // shapes validated by construction
		mk = next
	}

	return coeffs
}

// evalPoly evaluates the monic polynomial λⁿ + c1·λⁿ⁻¹ + … + cn at z
// via Horner's scheme. Complexity: O(n).
func evalPoly(coeffs []float64, z complex128) complex128 {
	acc := complex(1, 0)
	for _, c := range coeffs {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// Eigenvalues computes all eigenvalues of a square real matrix as
// complex128 values, in no particular order.
//
// Implementation:
//   - Stage 1: validate square; scale the matrix by its largest absolute
//     entry so all roots live near the unit disk.
//   - Stage 2: characteristic polynomial via Faddeev–LeVerrier, then
//     Durand–Kerner simultaneous root iteration from the standard
//     (0.4+0.9i)^k starting points; rescale the converged roots.
//
// Inputs:
//   - m: square matrix; never mutated.
//   - tol: convergence threshold on the largest root update per iteration
//     (relative to the scaled matrix).
//
// Accuracy:
//   - Simple roots converge to roughly tol. A root of multiplicity m is
//     only determined to O(ε^(1/m)) by the polynomial coefficients; its
//     iterates stall at that level and are accepted once the updates stop
//     improving below the tol^(1/4) ceiling.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrNaNInf from validation,
//   - ErrEigenFailed when the root iteration has neither converged nor
//     stalled at an acceptable level within its iteration budget.
//
// Determinism:
//   - Fixed starting points and update order; stable results.
//
// Complexity:
//   - Time O(n⁴) for the polynomial plus O(iter·n²) for the roots.
func Eigenvalues(m *Dense, tol float64) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	n := m.r
	if n == 1 {
		return []complex128{complex(m.data[0], 0)}, nil
	}

	// Scale so the spectrum sits near the unit disk; a zero matrix
	// short-circuits to an all-zero spectrum.
	var scale float64
	for _, v := range m.data {
		if math.Abs(v) > scale {
			scale = math.Abs(v)
		}
	}
	if scale == 0 {
		return make([]complex128, n), nil
	}
	scaled, err := Scale(m, 1/scale)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	coeffs := charPoly(scaled)

	// Durand–Kerner from the conventional non-real geometric seeds.
	roots := make([]complex128, n)
	seed := complex(0.4, 0.9)
	roots[0] = seed
	for k := 1; k < n; k++ {
		roots[k] = roots[k-1] * seed
	}

	var iter, i, j, stall int
	var num, den, delta complex128
	var maxDelta float64
	bestDelta := math.Inf(1)
	stallCeil := math.Pow(tol, 0.25)
	converged := false
	for iter = 0; iter < durandKernerMaxIter; iter++ {
		maxDelta = 0
		for i = 0; i < n; i++ { // fixed update order (Jacobi-style pass)
			num = evalPoly(coeffs, roots[i])
			den = complex(1, 0)
			for j = 0; j < n; j++ {
				if j != i {
					den *= roots[i] - roots[j]
				}
			}
			if den == 0 {
				// Coincident iterates: nudge deterministically and retry
				// on the next pass.
				roots[i] += complex(tol+1e-12, tol+1e-12)
				maxDelta = math.Inf(1)
				continue
			}
			delta = num / den
			roots[i] -= delta
			if cmplx.Abs(delta) > maxDelta {
				maxDelta = cmplx.Abs(delta)
			}
		}
		if maxDelta <= tol {
			converged = true
			break
		}
		// Roots of multiplicity m stop improving once the updates hit the
		// evaluation-noise floor (≈ ε^(1/m)); accept the stalled cluster
		// instead of exhausting the budget.
		if maxDelta < bestDelta*durandKernerImprove {
			bestDelta = maxDelta
			stall = 0
			continue
		}
		stall++
		if stall >= durandKernerStallLimit && maxDelta <= stallCeil {
			converged = true
			break
		}
	}
	if !converged {
		return nil, matrixErrorf(opEigenvalues, ErrEigenFailed)
	}

	// Undo the scaling.
	for i = 0; i < n; i++ {
		roots[i] *= complex(scale, 0)
	}

	return roots, nil
}
