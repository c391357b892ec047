// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lightmat/matrix"
	"github.com/stretchr/testify/require"
)

var allTiers = []matrix.Tier{matrix.TierAuto, matrix.TierFlat, matrix.TierColumn, matrix.TierElement}

func TestSelectTier(t *testing.T) {
	t.Parallel()

	d := mustZeros(t, 4, 3)
	big := mustZeros(t, 6, 5)
	a := mustRand(t, 4, 3, 7)

	blk, err := big.Block(1, 1, 4, 3)
	require.NoError(t, err)
	tr := mustZeros(t, 3, 4).View().T()

	packedSrc := matrix.Add[float64](a.CView(), a.CView())
	blockSrc := matrix.Add[float64](a.CView(), blk.Const())

	tests := []struct {
		name string
		got  matrix.Tier
		want matrix.Tier
	}{
		{"packed<-linear expr", matrix.SelectTier_TestOnly[float64](packedSrc, d.View(), matrix.TierAuto), matrix.TierFlat},
		{"packed<-packed view", matrix.SelectTier_TestOnly[float64](a.CView(), d.View(), matrix.TierAuto), matrix.TierFlat},
		{"packed<-block expr", matrix.SelectTier_TestOnly[float64](blockSrc, d.View(), matrix.TierAuto), matrix.TierColumn},
		{"block<-packed", matrix.SelectTier_TestOnly[float64](packedSrc, blk, matrix.TierAuto), matrix.TierColumn},
		{"strided<-packed", matrix.SelectTier_TestOnly[float64](packedSrc, tr, matrix.TierAuto), matrix.TierElement},
		{"forced column", matrix.SelectTier_TestOnly[float64](packedSrc, d.View(), matrix.TierColumn), matrix.TierColumn},
		{"forced element", matrix.SelectTier_TestOnly[float64](packedSrc, d.View(), matrix.TierElement), matrix.TierElement},
		{"forced flat falls to column", matrix.SelectTier_TestOnly[float64](packedSrc, blk, matrix.TierFlat), matrix.TierColumn},
		{"forced column falls to element", matrix.SelectTier_TestOnly[float64](packedSrc, tr, matrix.TierColumn), matrix.TierElement},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, tc.got, "%s: got %s", tc.name, tc.got)
	}
}

// Every tier, every destination layout and every source form yields the
// nested-loop result.
func TestEvaluate_TierEquivalence(t *testing.T) {
	t.Parallel()

	const r, c = 5, 4
	a := mustRand(t, r, c, 11)
	b := mustRand(t, r, c, 12)
	bigA := mustRand(t, r+2, c+3, 13)
	blkA, err := bigA.Block(2, 1, r, c)
	require.NoError(t, err)
	bT := mustRand(t, c, r, 14)

	want := reference(r, c, func(i, j int) float64 {
		return 2*a.CView().At(i, j) + (1 - b.CView().At(i, j))
	})
	wantMixed := reference(r, c, func(i, j int) float64 {
		return blkA.At(i, j)*bT.CView().At(j, i) - 3
	})

	sources := []struct {
		name string
		src  matrix.Expr[float64]
		want [][]float64
	}{
		{"packed", matrix.Add(matrix.MulScalar(a.CView(), 2), matrix.ScalarSub(1, b.CView())), want},
		{"hidden", matrix.Add(matrix.MulScalar(hide{a.CView()}, 2), matrix.ScalarSub[float64](1, hide{b.CView()})), want},
		{"hidden-root", hide{matrix.Add(matrix.MulScalar(a.CView(), 2), matrix.ScalarSub(1, b.CView()))}, want},
		{"block-and-transpose", matrix.SubScalar(matrix.Mul[float64](blkA.Const(), bT.CView().T()), 3), wantMixed},
	}

	type dest struct {
		name string
		make func(t *testing.T) matrix.Mutable[float64]
	}
	dests := []dest{
		{"packed", func(t *testing.T) matrix.Mutable[float64] { return mustZeros(t, r, c).View() }},
		{"block", func(t *testing.T) matrix.Mutable[float64] {
			blk, err := mustZeros(t, r+3, c+1).Block(3, 1, r, c)
			require.NoError(t, err)
			return blk
		}},
		{"strided", func(t *testing.T) matrix.Mutable[float64] { return mustZeros(t, c, r).View().T() }},
		{"rows-step", func(t *testing.T) matrix.Mutable[float64] {
			s, err := mustZeros(t, 2*r, c).View().RowsStep(0, 2*r, 2)
			require.NoError(t, err)
			return s
		}},
	}

	for _, s := range sources {
		for _, d := range dests {
			for _, tier := range allTiers {
				s, d, tier := s, d, tier
				t.Run(fmt.Sprintf("%s/%s/%s", s.name, d.name, tier), func(t *testing.T) {
					t.Parallel()
					dst := d.make(t)
					require.NoError(t, matrix.Evaluate(s.src, dst, matrix.WithTier(tier)))
					requireRows(t, s.want, dst)
				})
			}
		}
	}
}

func TestEvaluate_VectorDestinations(t *testing.T) {
	t.Parallel()

	m := mustRand(t, 3, 4, 21)
	for _, tier := range allTiers {
		tier := tier
		t.Run(tier.String(), func(t *testing.T) {
			t.Parallel()
			colOut := mustZeros(t, 3, 4)
			rowOut := mustZeros(t, 3, 4)

			// column vector <- column of m + 1
			srcCol, err := m.CView().Column(2)
			require.NoError(t, err)
			dstCol, err := colOut.View().Column(0)
			require.NoError(t, err)
			require.NoError(t, matrix.Evaluate(matrix.AddScalar[float64](srcCol, 1), dstCol, matrix.WithTier(tier)))

			// stepped row <- row of m negated
			srcRow, err := m.CView().Row(1)
			require.NoError(t, err)
			dstRow, err := rowOut.View().Row(2)
			require.NoError(t, err)
			require.NoError(t, matrix.Evaluate(matrix.Neg[float64](srcRow), dstRow, matrix.WithTier(tier)))

			// packed row vector <- stepped row
			rowBuf := make([]float64, 4)
			pr, err := matrix.NewRefRow(rowBuf, 4)
			require.NoError(t, err)
			require.NoError(t, matrix.Evaluate[float64](srcRow, pr, matrix.WithTier(tier)))

			mv := m.CView()
			for i := 0; i < 3; i++ {
				require.Equal(t, mv.At(i, 2)+1, colOut.CView().At(i, 0))
			}
			for j := 0; j < 4; j++ {
				require.Equal(t, -mv.At(1, j), rowOut.CView().At(2, j))
				require.Equal(t, mv.At(1, j), rowBuf[j])
			}
		})
	}
}

func TestEvaluate_SelfAssignmentIsNoOp(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "self", matrix.AliasKind_TestOnly[float64](d.CView(), d.View()))
	require.NoError(t, d.View().Assign(d.CView()))
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, d.CView())

	blk, err := d.Block(0, 1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, blk.Assign(blk.Const()))
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, d.CView())
}

func TestEvaluate_TransposeIntoSelf(t *testing.T) {
	t.Parallel()

	for _, tier := range allTiers {
		tier := tier
		t.Run(tier.String(), func(t *testing.T) {
			t.Parallel()
			d := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
			require.Equal(t, "overlap", matrix.AliasKind_TestOnly[float64](d.CView().T(), d.View()))
			require.NoError(t, matrix.Evaluate[float64](d.CView().T(), d.View(), matrix.WithTier(tier)))
			requireRows(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, d.CView())

			// and through an expression: d = d' + d
			require.NoError(t, d.Assign(matrix.Add[float64](d.CView().T(), d.CView()), matrix.WithTier(tier)))
			requireRows(t, [][]float64{{2, 6, 10}, {6, 10, 14}, {10, 14, 18}}, d.CView())
		})
	}
}

func TestEvaluate_IdenticalLeaf(t *testing.T) {
	t.Parallel()

	for _, tier := range allTiers {
		tier := tier
		t.Run(tier.String(), func(t *testing.T) {
			t.Parallel()
			a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
			b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

			// a = b - a: the destination is read after b is written first
			src := matrix.Sub(b.CView(), a.CView())
			require.Equal(t, "identical", matrix.AliasKind_TestOnly[float64](src, a.View()))
			require.NoError(t, a.Assign(src, matrix.WithTier(tier)))
			requireRows(t, [][]float64{{9, 18}, {27, 36}}, a.CView())

			// a = a .* a + a
			require.NoError(t, a.Assign(matrix.Add(matrix.Mul(a.CView(), a.CView()), a.CView()), matrix.WithTier(tier)))
			requireRows(t, [][]float64{{90, 342}, {756, 1332}}, a.CView())
		})
	}
}

func TestEvaluate_ShiftedOverlap(t *testing.T) {
	t.Parallel()

	for _, tier := range allTiers {
		tier := tier
		t.Run(tier.String(), func(t *testing.T) {
			t.Parallel()
			buf := seq(10, 0)
			src, err := matrix.NewCRefCol(buf[:8], 8)
			require.NoError(t, err)
			dst, err := matrix.NewRefCol(buf[2:], 8)
			require.NoError(t, err)

			e := matrix.MulScalar[float64](src, 10)
			require.Equal(t, "overlap", matrix.AliasKind_TestOnly[float64](e, dst))
			require.NoError(t, matrix.Evaluate[float64](e, dst, matrix.WithTier(tier)))
			require.Equal(t, []float64{0, 1, 0, 10, 20, 30, 40, 50, 60, 70}, buf)
		})
	}
}

func TestEvaluate_NoAliasBetweenDisjointBlocks(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	left, err := d.Block(0, 0, 2, 2)
	require.NoError(t, err)
	right, err := d.Block(0, 2, 2, 2)
	require.NoError(t, err)

	e := matrix.Neg[float64](left.Const())
	require.Equal(t, "none", matrix.AliasKind_TestOnly[float64](e, right))
	require.NoError(t, right.Assign(e))
	requireRows(t, [][]float64{{1, 2, -1, -2}, {5, 6, -5, -6}}, d.CView())
}

func TestEvaluate_AliasCheckDisabled(t *testing.T) {
	t.Parallel()

	// Disjoint operands evaluate normally without the check.
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	d := mustZeros(t, 2, 2)
	require.NoError(t, d.Assign(matrix.ScalarMul[float64](2, a.CView()), matrix.WithAliasCheck(false)))
	requireRows(t, [][]float64{{2, 4}, {6, 8}}, d.CView())

	// Self assignment is harmless either way.
	require.NoError(t, d.Assign(d.CView(), matrix.WithAliasCheck(false)))
	requireRows(t, [][]float64{{2, 4}, {6, 8}}, d.CView())
}
