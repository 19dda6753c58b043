// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphconv/matrix"
)

var sinkMatrix matrix.Matrix

func benchmarkMul(b *testing.B, n int, wrap bool) {
	x, y := MustDense(b, n, n), MustDense(b, n, n)
	RandomFill(b, x, 1)
	RandomFill(b, y, 2)
	var lhs matrix.Matrix = x
	if wrap {
		lhs = hide{x}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix, _ = matrix.Mul(lhs, y)
	}
}

func BenchmarkMul_Dense64(b *testing.B)    { benchmarkMul(b, 64, false) }
func BenchmarkMul_Fallback64(b *testing.B) { benchmarkMul(b, 64, true) }
