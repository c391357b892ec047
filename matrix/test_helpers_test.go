// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (sequential buffers, literal
//     matrices) and comparison utilities for views and expressions.
//   • Keep all data exactly representable so float comparisons are exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lightmat/matrix"
	"github.com/katalvlaran/lightmat/matrix/ops"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Expr to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Expr to forward Rows/Cols/At/Traits.
//   - Stage 2: Use hide{X} in tests to force the generic At-based paths.
//
// Behavior highlights:
//   - The dispatcher cannot see view internals or evaluation rules through
//     the wrapper, so every tier falls back to per-element At calls.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Expr[float64] }

// seq returns [start, start+1, ..., start+n-1].
func seq(n int, start float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = start + float64(k)
	}

	return out
}

// mustDense builds a Dense from row literals or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense[float64] {
	tb.Helper()
	d, err := matrix.NewDenseRows(rows)
	require.NoError(tb, err)

	return d
}

// mustZeros allocates an r×c zero Dense or fails the test.
func mustZeros(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	d, err := matrix.NewDense[float64](r, c)
	require.NoError(tb, err)

	return d
}

// mustRand allocates an r×c Dense filled from a fixed seed.
func mustRand(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	d := mustZeros(tb, r, c)
	rng := rand.New(rand.NewSource(seed))
	data := d.Data()
	for k := range data {
		data[k] = float64(rng.Intn(200) - 100)
	}

	return d
}

// rowsOf reads any Expr into row literals.
func rowsOf[T ops.Scalar](e matrix.Expr[T]) [][]T {
	out := make([][]T, e.Rows())
	for i := range out {
		out[i] = make([]T, e.Cols())
		for j := range out[i] {
			out[i][j] = e.At(i, j)
		}
	}

	return out
}

// requireRows asserts that e holds exactly the given row literals.
func requireRows[T ops.Scalar](tb testing.TB, want [][]T, e matrix.Expr[T]) {
	tb.Helper()
	require.Equal(tb, want, rowsOf(e))
}

// reference computes f(i, j) into fresh row literals, the nested-loop
// semantics every evaluation tier must reproduce.
func reference(r, c int, f func(i, j int) float64) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = f(i, j)
		}
	}

	return out
}
