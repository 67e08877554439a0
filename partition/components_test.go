// SPDX-License-Identifier: MIT
// Package partition_test: unit tests for ConnectedComponents.
package partition_test

import (
	"testing"

	"github.com/katalvlaran/isotypic/partition"
	"github.com/stretchr/testify/require"
)

// adjFromEdges builds a symmetric n×n boolean adjacency from edge pairs.
func adjFromEdges(n int, edges [][2]int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	return adj
}

// TestConnectedComponentsBasic covers a path, an isolated vertex and a pair.
func TestConnectedComponentsBasic(t *testing.T) {
	adj := adjFromEdges(6, [][2]int{{0, 1}, {1, 2}, {4, 5}})

	p, err := partition.ConnectedComponents(adj)
	require.NoError(t, err)
	require.Equal(t, 3, p.NumBlocks())
	require.Equal(t, []int{0, 1, 2}, p.Block(0))
	require.Equal(t, []int{3}, p.Block(1))
	require.Equal(t, []int{4, 5}, p.Block(2))
}

// TestConnectedComponentsDiagonalIgnored: self-loops change nothing.
func TestConnectedComponentsDiagonalIgnored(t *testing.T) {
	adj := adjFromEdges(3, nil)
	for i := 0; i < 3; i++ {
		adj[i][i] = true
	}

	p, err := partition.ConnectedComponents(adj)
	require.NoError(t, err)
	require.Equal(t, 3, p.NumBlocks())
}

// TestConnectedComponentsDeterministic: repeat runs are identical.
func TestConnectedComponentsDeterministic(t *testing.T) {
	adj := adjFromEdges(8, [][2]int{{7, 0}, {3, 5}, {5, 1}, {2, 6}})

	p1, err := partition.ConnectedComponents(adj)
	require.NoError(t, err)
	p2, err := partition.ConnectedComponents(adj)
	require.NoError(t, err)

	require.Equal(t, p1.NumBlocks(), p2.NumBlocks())
	for i := 0; i < p1.NumBlocks(); i++ {
		require.Equal(t, p1.Block(i), p2.Block(i))
	}
}

// TestConnectedComponentsErrors covers the adjacency validation paths.
func TestConnectedComponentsErrors(t *testing.T) {
	_, err := partition.ConnectedComponents(nil)
	require.ErrorIs(t, err, partition.ErrBadAdjacency)

	ragged := [][]bool{{false, true}, {true}}
	_, err = partition.ConnectedComponents(ragged)
	require.ErrorIs(t, err, partition.ErrBadAdjacency)

	asym := adjFromEdges(2, nil)
	asym[0][1] = true
	_, err = partition.ConnectedComponents(asym)
	require.ErrorIs(t, err, partition.ErrAsymmetricAdjacency)
}
