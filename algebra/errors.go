// SPDX-License-Identifier: MIT
// Package algebra: sentinel errors.
//
// All exported entry points wrap these sentinels with an operation tag;
// callers match them via errors.Is.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRep indicates a structurally broken representation: nil
	// rep, no generators, a nil or non-square generator, or generators of
	// mismatched dimensions.
	ErrInvalidRep = errors.New("algebra: invalid representation")

	// ErrUnsupportedRep indicates that some generator image is not a
	// signed-permutation matrix within tolerance. Only signed-permutation
	// representations are supported.
	ErrUnsupportedRep = errors.New("algebra: generator is not a signed-permutation matrix")

	// ErrBadFiberSelection indicates an empty, duplicated or out-of-range
	// fiber-block selection passed to RestrictToFibers.
	ErrBadFiberSelection = errors.New("algebra: invalid fiber selection")

	// ErrNilRand indicates a nil randomness source passed to a sampler.
	ErrNilRand = errors.New("algebra: rng must not be nil")
)

// algebraErrorf wraps err with the operation tag for context.
func algebraErrorf(op string, err error) error {
	return fmt.Errorf("algebra.%s: %w", op, err)
}
