// SPDX-License-Identifier: MIT
// Package isodec: sentinel errors.

package isodec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilAlgebra indicates a nil algebra passed to Decompose.
	ErrNilAlgebra = errors.New("isodec: algebra must not be nil")

	// ErrInconsistent indicates a fatal consistency violation: unequal run
	// sizes inside one component, or non-uniform eigenvalue cluster sizes
	// in the real-type test. It signals sampling degeneracy or a tolerance
	// misconfiguration, not a recoverable condition; rerun with a fresh
	// seed or an adjusted tolerance.
	ErrInconsistent = errors.New("isodec: inconsistent decomposition")

	// ErrBadComponent indicates an out-of-range component index.
	ErrBadComponent = errors.New("isodec: component index out of range")
)

// isodecErrorf wraps err with the operation tag for context.
func isodecErrorf(op string, err error) error {
	return fmt.Errorf("isodec.%s: %w", op, err)
}
