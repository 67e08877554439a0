// SPDX-License-Identifier: MIT
// Package partition: connected components of a boolean adjacency.

package partition

const opConnectedComponents = "ConnectedComponents"

// ConnectedComponents computes the connected components of the undirected
// graph on {0..n-1} whose edges are the true off-diagonal entries of adj.
// Diagonal entries are ignored. The result is a Partition with one block
// per component.
//
// Implementation:
//   - Stage 1: validate that adj is square and symmetric.
//   - Stage 2: BFS from every unvisited root, scanning roots in ascending
//     index order; neighbors are enqueued in ascending order too, so each
//     block comes out sorted and the whole result is deterministic.
//
// Errors: ErrBadAdjacency (nil rows / non-square), ErrAsymmetricAdjacency.
// Complexity: Time O(n²) over the dense adjacency, Space O(n).
func ConnectedComponents(adj [][]bool) (*Partition, error) {
	n := len(adj)
	if n == 0 {
		return nil, partitionErrorf(opConnectedComponents, ErrBadAdjacency)
	}
	for _, row := range adj {
		if len(row) != n {
			return nil, partitionErrorf(opConnectedComponents, ErrBadAdjacency)
		}
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, partitionErrorf(opConnectedComponents, ErrAsymmetricAdjacency)
			}
		}
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var blocks [][]int
	var root, cur int
	for root = 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		block := []int{root}
		for len(queue) > 0 {
			cur = queue[0]
			queue = queue[1:]
			for j = 0; j < n; j++ {
				if j == cur || visited[j] || !adj[cur][j] {
					continue
				}
				visited[j] = true
				queue = append(queue, j)
				block = append(block, j)
			}
		}
		blocks = append(blocks, block)
	}

	// Blocks were discovered root-first with ascending neighbor scans, but
	// BFS layering can interleave indices; NewPartition sorts each block.
	p, err := NewPartition(n, blocks)
	if err != nil {
		return nil, partitionErrorf(opConnectedComponents, err)
	}

	return p, nil
}
