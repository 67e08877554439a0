// SPDX-License-Identifier: MIT
// Package partition_test: unit tests for the Partition value type.
package partition_test

import (
	"testing"

	"github.com/katalvlaran/isotypic/partition"
	"github.com/stretchr/testify/require"
)

// TestNewPartitionValid checks construction, accessors and immutability.
func TestNewPartitionValid(t *testing.T) {
	p, err := partition.NewPartition(5, [][]int{{2, 0}, {1, 4, 3}})
	require.NoError(t, err)

	require.Equal(t, 5, p.N())
	require.Equal(t, 2, p.NumBlocks())
	require.Equal(t, []int{0, 2}, p.Block(0)) // sorted on construction
	require.Equal(t, []int{1, 3, 4}, p.Block(1))
	require.Equal(t, []int{2, 3}, p.Sizes())

	require.Equal(t, 0, p.BlockOf(2))
	require.Equal(t, 1, p.BlockOf(4))
	require.Equal(t, -1, p.BlockOf(5))
	require.Nil(t, p.Block(2))

	// Mutating a returned block must not leak into the partition.
	b := p.Block(0)
	b[0] = 99
	require.Equal(t, []int{0, 2}, p.Block(0))
}

// TestNewPartitionInvalid enumerates the rejection cases.
func TestNewPartitionInvalid(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		blocks [][]int
	}{
		{"empty block", 3, [][]int{{0, 1, 2}, {}}},
		{"duplicate index", 3, [][]int{{0, 1}, {1, 2}}},
		{"out of range", 3, [][]int{{0, 1}, {2, 3}}},
		{"incomplete cover", 4, [][]int{{0, 1}, {2}}},
		{"non-positive n", 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.NewPartition(tc.n, tc.blocks)
			require.ErrorIs(t, err, partition.ErrInvalidPartition)
		})
	}
}
