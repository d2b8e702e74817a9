// SPDX-License-Identifier: MIT
package walks_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/katalvlaran/walkfeat/walks"
)

var sinkV []float64

func BenchmarkClosedWalks(b *testing.B) {
	for _, n := range []int{16, 64} {
		b.Run(fmt.Sprintf("n=%d/k=10", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			a, _ := matrix.NewDense(n, n)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if rng.Float64() < 0.2 {
						_ = a.Set(i, j, 1)
					}
				}
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := walks.ClosedWalks(a, 10)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
