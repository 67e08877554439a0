// SPDX-License-Identifier: MIT
// Package partition_test: runnable documentation examples.
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/isotypic/partition"
)

// ExampleConnectedComponents groups five indices by a sparse relation.
func ExampleConnectedComponents() {
	adj := make([][]bool, 5)
	for i := range adj {
		adj[i] = make([]bool, 5)
	}
	// Edges 0-2 and 1-4; index 3 stays alone.
	adj[0][2], adj[2][0] = true, true
	adj[1][4], adj[4][1] = true, true

	p, err := partition.ConnectedComponents(adj)
	if err != nil {
		fmt.Println("components failed:", err)
		return
	}
	for i := 0; i < p.NumBlocks(); i++ {
		fmt.Println(p.Block(i))
	}

	// Output:
	// [0 2]
	// [1 4]
	// [3]
}
