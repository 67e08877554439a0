// SPDX-License-Identifier: MIT
// Package isodec_test: runnable documentation examples.
package isodec_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/isotypic/algebra"
	"github.com/katalvlaran/isotypic/isodec"
	"github.com/katalvlaran/isotypic/matrix"
)

// ExampleDecompose splits the rotation representation of the 5-cycle into
// its isotypic components and refines the result.
func ExampleDecompose() {
	// Permutation matrix of the cycle 0 → 1 → 2 → 3 → 4 → 0.
	g, _ := matrix.NewDense(5, 5)
	for j := 0; j < 5; j++ {
		_ = g.Set((j+1)%5, j, 1)
	}
	rep, _ := algebra.NewGeneratorRep(algebra.Real, []*matrix.Dense{g})
	alg, err := algebra.ForRep(rep)
	if err != nil {
		fmt.Println("algebra failed:", err)
		return
	}

	d, err := isodec.Decompose(alg, isodec.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		fmt.Println("decompose failed:", err)
		return
	}
	for r := 0; r < d.NumComponents(); r++ {
		fmt.Printf("component %d: dim %d, multiplicity %d\n", r, d.RepDim(r), d.RepMul(r))
	}

	refined, err := d.Refine()
	if err != nil {
		fmt.Println("refine failed:", err)
		return
	}
	fmt.Println("ordered:", refined.Ordered())

	// Output:
	// component 0: dim 1, multiplicity 1
	// component 1: dim 2, multiplicity 1
	// component 2: dim 2, multiplicity 1
	// ordered: true
}
