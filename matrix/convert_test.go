// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lightmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestConvert_Widening(t *testing.T) {
	t.Parallel()

	ints, err := matrix.NewCRef([]int32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c, err := matrix.Convert[float64](ints)
	require.NoError(t, err)
	require.NoError(t, c.Err())
	requireRows(t, [][]float64{{1, 3}, {2, 4}}, c)

	d := mustZeros(t, 2, 2)
	require.NoError(t, matrix.AssignConvert[float64](d.View(), ints))
	requireRows(t, [][]float64{{1, 3}, {2, 4}}, d.CView())

	// converted operands compose with native ones
	require.NoError(t, d.Assign(matrix.Add[float64](c, d.CView())))
	requireRows(t, [][]float64{{2, 6}, {4, 8}}, d.CView())

	bytes, err := matrix.NewCRefCol([]uint8{200, 255}, 2)
	require.NoError(t, err)
	wide, err := matrix.NewRefCol(make([]int16, 2), 2)
	require.NoError(t, err)
	require.NoError(t, matrix.AssignConvert[int16](wide, bytes))
	requireRows(t, [][]int16{{200}, {255}}, wide)
}

func TestConvert_NarrowingRejected(t *testing.T) {
	t.Parallel()

	floats, err := matrix.NewCRef([]float64{1.5, -2.5}, 1, 2)
	require.NoError(t, err)
	_, err = matrix.Convert[int32](floats)
	require.ErrorIs(t, err, matrix.ErrNarrowing)

	bytes, err := matrix.NewCRef([]uint8{1, 2}, 1, 2)
	require.NoError(t, err)
	_, err = matrix.Convert[int8](bytes)
	require.ErrorIs(t, err, matrix.ErrNarrowing)

	signed, err := matrix.NewCRef([]int8{1, 2}, 1, 2)
	require.NoError(t, err)
	_, err = matrix.Convert[uint32](signed)
	require.ErrorIs(t, err, matrix.ErrNarrowing)

	dst, err := matrix.NewRef(make([]float32, 2), 1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.AssignConvert[float32](dst, floats), matrix.ErrNarrowing)
	require.Equal(t, []float32{0, 0}, dst.Data())
}

func TestCast_Explicit(t *testing.T) {
	t.Parallel()

	floats, err := matrix.NewCRef([]float64{1.7, -2.9, 3, 0.2}, 2, 2)
	require.NoError(t, err)

	for _, tier := range allTiers {
		dst, err := matrix.NewRef(make([]int32, 4), 2, 2)
		require.NoError(t, err)
		require.NoError(t, matrix.Evaluate[int32](matrix.Cast[int32](floats), dst, matrix.WithTier(tier)))
		requireRows(t, [][]int32{{1, 3}, {-2, 0}}, dst)
	}

	// through a non-packed source
	tr := floats.T()
	out, err := matrix.NewRef(make([]int64, 4), 2, 2)
	require.NoError(t, err)
	require.NoError(t, out.Assign(matrix.Cast[int64](tr)))
	requireRows(t, [][]int64{{1, -2}, {3, 0}}, out)
}

func TestConvert_AliasThroughConversion(t *testing.T) {
	t.Parallel()

	// The destination is found as a leaf next to a converted operand.
	f32, err := matrix.NewCRef([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	d := mustZeros(t, 2, 2)
	e := matrix.Add[float64](matrix.Cast[float64](f32), d.CView())
	require.Equal(t, "identical", matrix.AliasKind_TestOnly[float64](e, d.View()))
	require.NoError(t, d.Assign(e))
	requireRows(t, [][]float64{{1, 3}, {2, 4}}, d.CView())
}
