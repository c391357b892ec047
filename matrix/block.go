// SPDX-License-Identifier: MIT

// Package matrix - non-continuous views.
//
// Purpose:
//   - CRefBlock / RefBlock: windows whose columns are packed but separated by
//     a leading dimension larger than the row count (row ranges, blocks).
//   - CRefStrided / RefStrided: arbitrary row stride and leading dimension
//     (stepped row selection, transposes, general Range selection).
//
// Behavior highlights:
//   - Neither kind is continuous, so neither offers flat (AtFlat) access.
//   - Blocks keep per-column continuity and are evaluated column by column;
//     strided views fall back to the element loop.

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// CRefBlock is a read-only view with packed columns and ld >= rows.
type CRefBlock[T ops.Scalar] struct{ view[T] }

// RefBlock is the mutable flavor of CRefBlock.
type RefBlock[T ops.Scalar] struct{ CRefBlock[T] }

// CRefStrided is a read-only view with arbitrary row and column strides.
type CRefStrided[T ops.Scalar] struct{ view[T] }

// RefStrided is the mutable flavor of CRefStrided.
type RefStrided[T ops.Scalar] struct{ CRefStrided[T] }

var (
	_ Mutable[float64] = RefBlock[float64]{}
	_ Mutable[float64] = RefStrided[float64]{}
)

// NewCRefBlock binds data as a read-only m×n view whose columns start ld
// elements apart, the layout of a BLAS matrix with leading dimension ld.
// Errors: ErrBadShape (ld < max(m, 1)), ErrShortBuffer.
func NewCRefBlock[T ops.Scalar](data []T, m, n, ld int) (CRefBlock[T], error) {
	if ld < m {
		return CRefBlock[T]{}, matrixErrorf("NewCRefBlock", ErrBadShape)
	}
	v, err := newStridedView(data, m, n, 1, ld, true)
	if err != nil {
		return CRefBlock[T]{}, matrixErrorf("NewCRefBlock", err)
	}

	return CRefBlock[T]{v}, nil
}

// NewRefBlock is the mutable flavor of NewCRefBlock.
func NewRefBlock[T ops.Scalar](data []T, m, n, ld int) (RefBlock[T], error) {
	if ld < m {
		return RefBlock[T]{}, matrixErrorf("NewRefBlock", ErrBadShape)
	}
	v, err := newStridedView(data, m, n, 1, ld, false)
	if err != nil {
		return RefBlock[T]{}, matrixErrorf("NewRefBlock", err)
	}

	return RefBlock[T]{CRefBlock[T]{v}}, nil
}

// NewCRefStrided binds data as a read-only m×n view with element (i, j) at
// data[i*rs + j*ld]. A row-major buffer with row stride s is
// NewCRefStrided(data, m, n, s, 1).
// Errors: ErrBadShape (non-positive stride or extent overflow), ErrShortBuffer.
func NewCRefStrided[T ops.Scalar](data []T, m, n, rs, ld int) (CRefStrided[T], error) {
	v, err := newStridedView(data, m, n, rs, ld, true)
	if err != nil {
		return CRefStrided[T]{}, matrixErrorf("NewCRefStrided", err)
	}

	return CRefStrided[T]{v}, nil
}

// NewRefStrided is the mutable flavor of NewCRefStrided.
func NewRefStrided[T ops.Scalar](data []T, m, n, rs, ld int) (RefStrided[T], error) {
	v, err := newStridedView(data, m, n, rs, ld, false)
	if err != nil {
		return RefStrided[T]{}, matrixErrorf("NewRefStrided", err)
	}

	return RefStrided[T]{CRefStrided[T]{v}}, nil
}

// At returns element (i, j) at offset i + j*ld.
func (m CRefBlock[T]) At(i, j int) T { return m.data[i+j*m.ld] }

// ColData returns the packed column j as a borrowed slice.
func (m CRefBlock[T]) ColData(j int) []T { return m.col(j) }

// Column selects column j.
func (m CRefBlock[T]) Column(j int) (CRefCol[T], error) {
	v, err := m.column(j)

	return CRefCol[T]{v}, err
}

// Columns selects columns [j0, j1).
func (m CRefBlock[T]) Columns(j0, j1 int) (CRefBlock[T], error) {
	v, err := m.columns(j0, j1)

	return CRefBlock[T]{v}, err
}

// Row selects row i.
func (m CRefBlock[T]) Row(i int) (CRefStep[T], error) {
	v, err := m.row(i)

	return CRefStep[T]{v}, err
}

// RowRange selects rows [i0, i1).
func (m CRefBlock[T]) RowRange(i0, i1 int) (CRefBlock[T], error) {
	v, err := m.rowRange(i0, i1)

	return CRefBlock[T]{v}, err
}

// Block selects the rows×cols window at (i0, j0).
func (m CRefBlock[T]) Block(i0, j0, rows, cols int) (CRefBlock[T], error) {
	v, err := m.block(i0, j0, rows, cols)

	return CRefBlock[T]{v}, err
}

// Sub applies a range selector to each dimension.
func (m CRefBlock[T]) Sub(rows, cols Range) (CRefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return CRefStrided[T]{v}, err
}

// T returns the transposed view.
func (m CRefBlock[T]) T() CRefStrided[T] { return CRefStrided[T]{m.transpose()} }

// Set writes x at (i, j).
func (m RefBlock[T]) Set(i, j int, x T) { m.data[i+j*m.ld] = x }

// Assign evaluates src into the view.
func (m RefBlock[T]) Assign(src Expr[T]) error { return Evaluate(src, m) }

// AssignGen lets g write its values directly into the view.
func (m RefBlock[T]) AssignGen(g Generator[T]) error { return Generate(g, m) }

// Fill sets every element to x.
func (m RefBlock[T]) Fill(x T) { fillView(m.view, x) }

// Const returns the read-only flavor.
func (m RefBlock[T]) Const() CRefBlock[T] { return CRefBlock[T]{m.readOnly()} }

// Column selects column j.
func (m RefBlock[T]) Column(j int) (RefCol[T], error) {
	v, err := m.column(j)

	return RefCol[T]{CRefCol[T]{v}}, err
}

// Columns selects columns [j0, j1).
func (m RefBlock[T]) Columns(j0, j1 int) (RefBlock[T], error) {
	v, err := m.columns(j0, j1)

	return RefBlock[T]{CRefBlock[T]{v}}, err
}

// Row selects row i.
func (m RefBlock[T]) Row(i int) (RefStep[T], error) {
	v, err := m.row(i)

	return RefStep[T]{CRefStep[T]{v}}, err
}

// RowRange selects rows [i0, i1).
func (m RefBlock[T]) RowRange(i0, i1 int) (RefBlock[T], error) {
	v, err := m.rowRange(i0, i1)

	return RefBlock[T]{CRefBlock[T]{v}}, err
}

// Block selects the rows×cols window at (i0, j0).
func (m RefBlock[T]) Block(i0, j0, rows, cols int) (RefBlock[T], error) {
	v, err := m.block(i0, j0, rows, cols)

	return RefBlock[T]{CRefBlock[T]{v}}, err
}

// Sub applies a range selector to each dimension.
func (m RefBlock[T]) Sub(rows, cols Range) (RefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// T returns the mutable transposed view.
func (m RefBlock[T]) T() RefStrided[T] { return RefStrided[T]{CRefStrided[T]{m.transpose()}} }

func (m RefBlock[T]) target() view[T] { return m.view }

// --- strided ---------------------------------------------------------------

// At returns element (i, j) at offset i*rs + j*ld.
func (m CRefStrided[T]) At(i, j int) T { return m.at(i, j) }

// RowStride returns the distance between vertically adjacent elements.
func (m CRefStrided[T]) RowStride() int { return m.rs }

// Column selects column j.
func (m CRefStrided[T]) Column(j int) (CRefStrided[T], error) {
	v, err := m.column(j)

	return CRefStrided[T]{v}, err
}

// Row selects row i.
func (m CRefStrided[T]) Row(i int) (CRefStrided[T], error) {
	v, err := m.row(i)

	return CRefStrided[T]{v}, err
}

// Sub applies a range selector to each dimension.
func (m CRefStrided[T]) Sub(rows, cols Range) (CRefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return CRefStrided[T]{v}, err
}

// T returns the transposed view.
func (m CRefStrided[T]) T() CRefStrided[T] { return CRefStrided[T]{m.transpose()} }

// Set writes x at (i, j).
func (m RefStrided[T]) Set(i, j int, x T) { m.set(i, j, x) }

// Assign evaluates src into the view.
func (m RefStrided[T]) Assign(src Expr[T]) error { return Evaluate(src, m) }

// AssignGen lets g produce values for the view.
func (m RefStrided[T]) AssignGen(g Generator[T]) error { return Generate(g, m) }

// Fill sets every element to x.
func (m RefStrided[T]) Fill(x T) { fillView(m.view, x) }

// Const returns the read-only flavor.
func (m RefStrided[T]) Const() CRefStrided[T] { return CRefStrided[T]{m.readOnly()} }

// Column selects column j.
func (m RefStrided[T]) Column(j int) (RefStrided[T], error) {
	v, err := m.column(j)

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// Row selects row i.
func (m RefStrided[T]) Row(i int) (RefStrided[T], error) {
	v, err := m.row(i)

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// Sub applies a range selector to each dimension.
func (m RefStrided[T]) Sub(rows, cols Range) (RefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// T returns the mutable transposed view.
func (m RefStrided[T]) T() RefStrided[T] { return RefStrided[T]{CRefStrided[T]{m.transpose()}} }

func (m RefStrided[T]) target() view[T] { return m.view }
