// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
)

// ExampleMul squares the adjacency matrix of a directed 3-cycle and reads
// the number of closed walks of length 2 off its trace.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	a2, _ := matrix.Mul(a, a)
	tr, _ := matrix.Trace(a2)

	fmt.Print(a2)
	fmt.Println("trace:", tr)
	// Output:
	// [0, 0, 1]
	// [1, 0, 0]
	// [0, 1, 0]
	// trace: 0
}
