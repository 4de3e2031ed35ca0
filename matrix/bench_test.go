// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the arithmetic and reduction
// kernels, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/echelon/matrix"
)

// benchSizes are the matrix sizes for the polynomial kernels.
var benchSizes = []int{32, 128, 256}

// cofactorSizes stay small: Laplace expansion is O(n!).
var cofactorSizes = []int{5, 7, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
	sinkI int
)

func benchRandom(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.Random(n, n, matrix.WithSeed(seed))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchRandom(b, n, 1337), benchRandom(b, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchRandom(b, n, 11), benchRandom(b, n, 22)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Mul(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkReducedEchelonForm(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchRandom(b, n, 7)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := A.Clone()
				m.ReducedEchelonForm()
				sinkM = m
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchRandom(b, n, 9)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = A.Rank()
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchRandom(b, n, 3)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range cofactorSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchRandom(b, n, 5)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
