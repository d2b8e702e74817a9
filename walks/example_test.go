// SPDX-License-Identifier: MIT
package walks_test

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/katalvlaran/walkfeat/walks"
)

func ExampleClosedWalks() {
	// Directed 3-cycle 0→1→2→0.
	a, _ := matrix.NewDenseFrom([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	fv, err := walks.ClosedWalks(a, 6)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(fv)
	// Output: [0 3 0 0 3]
}
