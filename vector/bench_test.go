// Package vector_test provides benchmarks for the O(n) Vector kernels.
package vector_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinear/vector"
)

// benchSizes are the vector lengths to benchmark.
var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector[float64]
	sinkF float64
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustFloat64(b, n), mustFloat64(b, n)
			x.Fill(1.5)
			y.Fill(2.5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustFloat64(b, n), mustFloat64(b, n)
			x.Fill(1.5)
			y.Fill(2.5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustFloat64(b, n)
			x.Fill(3)
			y := x.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = x.Equal(y)
			}
		})
	}
}
