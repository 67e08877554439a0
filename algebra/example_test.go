// SPDX-License-Identifier: MIT
// Package algebra_test: runnable documentation examples.
package algebra_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/isotypic/algebra"
	"github.com/katalvlaran/isotypic/matrix"
)

// ExampleForRep builds the commutant of a 3-cycle and samples it: the
// result is a circulant matrix, constant along wrapped diagonals.
func ExampleForRep() {
	// Permutation matrix of the cycle 0 → 1 → 2 → 0.
	g, _ := matrix.NewDense(3, 3)
	_ = g.Set(1, 0, 1)
	_ = g.Set(2, 1, 1)
	_ = g.Set(0, 2, 1)

	rep, _ := algebra.NewGeneratorRep(algebra.Real, []*matrix.Dense{g})
	alg, err := algebra.ForRep(rep)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	s, _ := alg.Sample(rand.New(rand.NewSource(1)))
	a00, _ := s.At(0, 0)
	a11, _ := s.At(1, 1)
	a01, _ := s.At(0, 1)
	a12, _ := s.At(1, 2)
	fmt.Println("fibers:", alg.Fibers().NumBlocks())
	fmt.Println("diagonal constant:", a00 == a11)
	fmt.Println("superdiagonal constant:", a01 == a12)

	// Output:
	// fibers: 1
	// diagonal constant: true
	// superdiagonal constant: true
}
