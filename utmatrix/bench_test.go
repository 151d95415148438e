// Package utmatrix_test provides benchmarks for the O(N²) Matrix kernels.
package utmatrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinear/utmatrix"
)

var benchSizes = []int{64, 256, 1024}

var (
	sinkM *utmatrix.Matrix[float64]
	sinkB bool
)

func benchMatrix(b *testing.B, n int, val float64) *utmatrix.Matrix[float64] {
	b.Helper()
	m, err := utmatrix.New[float64](n)
	if err != nil {
		b.Fatal(err)
	}
	m.Fill(val)

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchMatrix(b, n, 1), benchMatrix(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = x.Clone()
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchMatrix(b, n, 1)
			y := x.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = x.Equal(y)
			}
		})
	}
}
