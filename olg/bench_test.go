// SPDX-License-Identifier: MIT
package olg_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/katalvlaran/walkfeat/olg"
)

var sinkT *matrix.Dense

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{16, 48} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := matrix.NewDenseFrom(randomBinary(rand.New(rand.NewSource(1)), n, 0.15))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				T, err := olg.Build(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkT = T
			}
		})
	}
}
