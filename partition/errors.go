// SPDX-License-Identifier: MIT
// Package partition: sentinel errors.
//
// All exported functions wrap these sentinels with an operation tag, so
// callers match them via errors.Is.

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPartition indicates that the supplied blocks are not a
	// partition of {0..n-1}: empty block, duplicate index, index out of
	// range, or incomplete cover.
	ErrInvalidPartition = errors.New("partition: blocks do not partition the index set")

	// ErrBadAdjacency indicates a nil or non-square adjacency matrix.
	ErrBadAdjacency = errors.New("partition: adjacency must be square and non-nil")

	// ErrAsymmetricAdjacency indicates adj[i][j] != adj[j][i] for some pair.
	ErrAsymmetricAdjacency = errors.New("partition: adjacency must be symmetric")
)

// partitionErrorf wraps err with the operation tag for context.
func partitionErrorf(op string, err error) error {
	return fmt.Errorf("partition.%s: %w", op, err)
}
