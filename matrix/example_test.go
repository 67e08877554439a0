// SPDX-License-Identifier: MIT
// Package matrix_test: runnable documentation examples.
package matrix_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/isotypic/matrix"
)

// ExampleEigen diagonalizes a small symmetric matrix and prints its
// spectrum in ascending order.
func ExampleEigen() {
	m, _ := matrix.NewDenseFromSlice(2, 2, []float64{2, 1, 1, 2})

	vals, _, err := matrix.Eigen(m, 1e-10, matrix.DefaultMaxSweeps)
	if err != nil {
		fmt.Println("eigen failed:", err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("%.1f %.1f\n", vals[0], vals[1])

	// Output:
	// 1.0 3.0
}

// ExampleSortedEig shows the sorted variant with symmetrization enabled.
func ExampleSortedEig() {
	m, _ := matrix.NewDenseFromSlice(3, 3, []float64{
		5, 0, 0,
		0, 1, 0,
		0, 0, 3,
	})

	vals, _, err := matrix.SortedEig(m, matrix.Descending, true, 1e-10, matrix.DefaultMaxSweeps)
	if err != nil {
		fmt.Println("eigen failed:", err)
		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", vals[0], vals[1], vals[2])

	// Output:
	// 5 3 1
}
