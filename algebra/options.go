// SPDX-License-Identifier: MIT
// Package algebra: functional options for ForRep.

package algebra

import "math"

// DefaultTolerance is the magnitude threshold used both for recognizing
// signed-permutation entries (|v| within tolerance of 0 or 1) and as the
// default numeric tolerance downstream.
const DefaultTolerance = 1e-8

// Options gathers the tunables of ForRep.
type Options struct {
	// Tolerance is the entry-magnitude threshold for generator detection.
	Tolerance float64
}

// Option mutates Options; options apply in order, last writer wins.
type Option func(*Options)

// WithTolerance overrides DefaultTolerance.
// Panics when eps is negative, NaN or Inf (programmer error).
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("algebra.WithTolerance: eps must be a finite non-negative number")
	}

	return func(o *Options) { o.Tolerance = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
