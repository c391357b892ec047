// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for shapes and the validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lightmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"2x3", 2, 3, nil},
		{"empty rows", 0, 5, nil},
		{"empty both", 0, 0, nil},
		{"negative rows", -1, 2, matrix.ErrBadShape},
		{"negative cols", 2, -3, matrix.ErrBadShape},
		{"overflow", math.MaxInt, 2, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := matrix.NewShape(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows*tc.cols, s.Nelems())
			require.Equal(t, tc.rows*tc.cols == 0, s.IsEmpty())
		})
	}
}

func TestShape_Predicates(t *testing.T) {
	t.Parallel()

	a := matrix.Shape{Rows: 3, Cols: 1}
	require.True(t, a.IsVector())
	require.True(t, a.Equal(matrix.Shape{Rows: 3, Cols: 1}))
	require.False(t, a.Equal(matrix.Shape{Rows: 1, Cols: 3}))
	require.False(t, matrix.Shape{Rows: 2, Cols: 2}.IsVector())
}

func TestRange_Constructors(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.Range{Begin: 0, End: -1, Step: 1}, matrix.All())
	require.Equal(t, matrix.Range{Begin: 2, End: 5, Step: 1}, matrix.Span(2, 5))
	require.Equal(t, matrix.Range{Begin: 1, End: 9, Step: 3}, matrix.Stride(1, 9, 3))
	require.Equal(t, matrix.Range{Begin: 4, End: 5, Step: 1}, matrix.Single(4))

	// Step 0 reads as 1; a stride past the end yields ceil(len/step) rows.
	m := grid3x4(t)
	z, err := m.Sub(matrix.Range{Begin: 0, End: 3}, matrix.Stride(0, 4, 3))
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 9}, {1, 10}, {2, 11}}, z)

	empty, err := m.Sub(matrix.Span(1, 1), matrix.All())
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 4, empty.Cols())
}

// TestValidateSameShape covers matching and mismatched dimensions across
// views, expressions and Dense.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	d23 := mustZeros(t, 2, 3)
	d33 := mustZeros(t, 3, 3)
	d24 := mustZeros(t, 2, 4)

	tests := []struct {
		name    string
		a, b    matrix.Dims
		wantErr error
	}{
		{"equal 2x3", d23, d23.CView(), nil},
		{"expr vs dense", matrix.Neg[float64](d23.CView()), d23, nil},
		{"row mismatch", d23, d33, matrix.ErrDimensionMismatch},
		{"col mismatch", d23.View(), d24.View(), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustZeros(t, 1, 1)))
}
