// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the evaluation tiers,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lightmat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkE error
)

func BenchmarkAssignAdd(b *testing.B) {
	for _, n := range benchSizes {
		for _, tier := range allTiers {
			b.Run(fmt.Sprintf("n=%d/%s", n, tier), func(b *testing.B) {
				b.ReportAllocs()
				A := mustRand(b, n, n, 1337)
				B := mustRand(b, n, n, 4242)
				C := mustZeros(b, n, n)
				e := matrix.Add(A.CView(), B.CView())
				opt := matrix.WithTier(tier)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkE = C.Assign(e, opt)
				}
				sinkF = C.Data()[0]
			})
		}
	}
}

func BenchmarkAssignComposed(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			A := mustRand(b, n, n, 1)
			B := mustRand(b, n, n, 2)
			C := mustZeros(b, n, n)
			e := matrix.ScalarSub(1, matrix.MulScalar(matrix.Sub(A.CView(), B.CView()), 0.5))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = C.Assign(e)
			}
			sinkF = C.Data()[0]
		})
	}
}

func BenchmarkAssignBlock(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			big := mustRand(b, n+8, n, 3)
			src, err := big.Block(4, 0, n, n)
			if err != nil {
				b.Fatal(err)
			}
			C := mustZeros(b, n, n)
			e := matrix.Neg[float64](src.Const())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = C.Assign(e)
			}
			sinkF = C.Data()[0]
		})
	}
}

func BenchmarkAssignTransposeIntoSelf(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			A := mustRand(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = A.View().Assign(A.CView().T())
			}
			sinkF = A.Data()[0]
		})
	}
}

func BenchmarkIdenticalLeaf(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			A := mustRand(b, n, n, 6)
			B := mustRand(b, n, n, 7)
			e := matrix.Add(A.CView(), B.CView())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = A.Assign(e)
			}
			sinkF = A.Data()[0]
		})
	}
}
