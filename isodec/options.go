// SPDX-License-Identifier: MIT
// Package isodec: functional options for Decompose, Refine and RepIsReal.

package isodec

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/isotypic/matrix"
)

// DefaultTolerance is the grouping tolerance: eigenvalues closer than this
// fall into one run, and a compressed block whose Frobenius norm exceeds
// it counts as interaction.
const DefaultTolerance = 1e-8

// eigConvergenceFactor scales the grouping tolerance down to the Jacobi
// and root-iteration convergence threshold, so the eigensolvers always
// resolve finer than the grouping decisions built on top of them.
const eigConvergenceFactor = 1e-2

// GapCollector observes, per fiber block, the gaps between consecutive
// sorted eigenvalues of the Phase-1 sample. Purely observational: useful
// for judging how far the spectrum is from the grouping tolerance.
type GapCollector func(block int, gap float64)

// Options gathers the tunables of the decomposer.
type Options struct {
	// Tolerance is the grouping tolerance (runs and interaction tests).
	Tolerance float64
	// MaxSweeps caps the Jacobi sweeps per eigendecomposition.
	MaxSweeps int
	// Rand is the randomness source behind all samples.
	Rand *rand.Rand
	// Gaps, when non-nil, receives the Phase-1 eigenvalue gaps.
	Gaps GapCollector
}

// Option mutates Options; options apply in order, last writer wins.
type Option func(*Options)

// WithTolerance overrides DefaultTolerance.
// Panics when eps is not a finite positive number (programmer error).
func WithTolerance(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("isodec.WithTolerance: eps must be a finite positive number")
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxSweeps overrides the Jacobi sweep budget.
// Panics when k is not positive (programmer error).
func WithMaxSweeps(k int) Option {
	if k <= 0 {
		panic("isodec.WithMaxSweeps: k must be positive")
	}

	return func(o *Options) { o.MaxSweeps = k }
}

// WithRand injects the randomness source. Pass a seeded source for
// reproducible decompositions. Panics on nil (programmer error).
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("isodec.WithRand: rng must not be nil")
	}

	return func(o *Options) { o.Rand = rng }
}

// WithGapCollector registers a Phase-1 eigenvalue gap observer.
func WithGapCollector(collect GapCollector) Option {
	return func(o *Options) { o.Gaps = collect }
}

// gatherOptions applies opts over the defaults. The default randomness is
// time-seeded, so unconfigured runs differ between invocations.
func gatherOptions(opts ...Option) Options {
	o := Options{
		Tolerance: DefaultTolerance,
		MaxSweeps: matrix.DefaultMaxSweeps,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// eigTol returns the eigensolver convergence threshold for o.
func (o Options) eigTol() float64 { return o.Tolerance * eigConvergenceFactor }
