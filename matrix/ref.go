// SPDX-License-Identifier: MIT

// Package matrix - packed column-major views.
//
// Purpose:
//   - CRef / Ref bind a caller-owned buffer as an m×n column-major matrix with
//     leading dimension m: the layout every fast path in the dispatcher targets.
//   - CRef is read-only; Ref adds element writes and whole-view assignment.
//
// Behavior highlights:
//   - Construction validates shape and buffer length only; the view never
//     copies, frees or retains anything besides the slice header.
//   - Element access is unchecked beyond Go's own slice bounds.
//   - Zero-sized views are legal; every operation on them is a no-op.
//
// Complexity quicksheet:
//   - constructors, At/Set, sub-views: O(1); Assign: O(m*n).

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// CRef is a read-only packed m×n view.
type CRef[T ops.Scalar] struct{ view[T] }

// Ref is a mutable packed m×n view.
type Ref[T ops.Scalar] struct{ CRef[T] }

// Compile-time conformance.
var (
	_ Expr[float64]    = CRef[float64]{}
	_ Mutable[float64] = Ref[float64]{}
)

// NewCRef binds data as a read-only m×n column-major view (ld = m).
// Errors: ErrBadShape, ErrShortBuffer.
func NewCRef[T ops.Scalar](data []T, m, n int) (CRef[T], error) {
	v, err := newView(data, m, n, kindPacked, true)
	if err != nil {
		return CRef[T]{}, matrixErrorf("NewCRef", err)
	}

	return CRef[T]{v}, nil
}

// NewRef binds data as a mutable m×n column-major view (ld = m).
// Errors: ErrBadShape, ErrShortBuffer.
func NewRef[T ops.Scalar](data []T, m, n int) (Ref[T], error) {
	v, err := newView(data, m, n, kindPacked, false)
	if err != nil {
		return Ref[T]{}, matrixErrorf("NewRef", err)
	}

	return Ref[T]{CRef[T]{v}}, nil
}

// At returns element (i, j) at offset i + j*ld.
func (m CRef[T]) At(i, j int) T { return m.data[i+j*m.ld] }

// AtFlat returns the k-th element in column-major order.
func (m CRef[T]) AtFlat(k int) T { return m.data[k] }

// ColData returns the packed column j as a borrowed slice.
func (m CRef[T]) ColData(j int) []T { return m.col(j) }

// Fixed marks the current dimensions as statically known. Static hints only
// select faster paths and stricter shape checks; values are unchanged.
func (m CRef[T]) Fixed() CRef[T] {
	m.ctRows, m.ctCols = m.rows, m.cols

	return m
}

// Column selects column j as a column vector.
func (m CRef[T]) Column(j int) (CRefCol[T], error) {
	v, err := m.column(j)

	return CRefCol[T]{v}, err
}

// Columns selects columns [j0, j1). Whole packed columns stay continuous.
func (m CRef[T]) Columns(j0, j1 int) (CRef[T], error) {
	v, err := m.columns(j0, j1)

	return CRef[T]{v}, err
}

// Row selects row i as a row vector stepping by the leading dimension.
func (m CRef[T]) Row(i int) (CRefStep[T], error) {
	v, err := m.row(i)

	return CRefStep[T]{v}, err
}

// RowRange selects rows [i0, i1); the result keeps the parent leading dimension.
func (m CRef[T]) RowRange(i0, i1 int) (CRefBlock[T], error) {
	v, err := m.rowRange(i0, i1)

	return CRefBlock[T]{v}, err
}

// RowsStep selects rows i0, i0+step, ... below i1.
func (m CRef[T]) RowsStep(i0, i1, step int) (CRefStrided[T], error) {
	v, err := m.sub(Stride(i0, i1, step), All())

	return CRefStrided[T]{v}, err
}

// Block selects the rows×cols window whose top-left element is (i0, j0).
func (m CRef[T]) Block(i0, j0, rows, cols int) (CRefBlock[T], error) {
	v, err := m.block(i0, j0, rows, cols)

	return CRefBlock[T]{v}, err
}

// Sub applies a range selector to each dimension.
func (m CRef[T]) Sub(rows, cols Range) (CRefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return CRefStrided[T]{v}, err
}

// T returns the transposed view over the same buffer.
func (m CRef[T]) T() CRefStrided[T] { return CRefStrided[T]{m.transpose()} }

// --- mutable -----------------------------------------------------------------

// Set writes x at (i, j).
func (m Ref[T]) Set(i, j int, x T) { m.data[i+j*m.ld] = x }

// SetFlat writes x at the k-th element in column-major order.
func (m Ref[T]) SetFlat(k int, x T) { m.data[k] = x }

// Assign evaluates src into the view. See Evaluate.
func (m Ref[T]) Assign(src Expr[T]) error { return Evaluate(src, m) }

// AssignGen lets g write its values directly into the view.
func (m Ref[T]) AssignGen(g Generator[T]) error { return Generate(g, m) }

// Fill sets every element to x.
func (m Ref[T]) Fill(x T) { fillView(m.view, x) }

// Const returns the read-only flavor of the view.
func (m Ref[T]) Const() CRef[T] { return CRef[T]{m.readOnly()} }

// Fixed marks the current dimensions as statically known.
func (m Ref[T]) Fixed() Ref[T] { return Ref[T]{m.CRef.Fixed()} }

// Column selects column j as a mutable column vector.
func (m Ref[T]) Column(j int) (RefCol[T], error) {
	v, err := m.column(j)

	return RefCol[T]{CRefCol[T]{v}}, err
}

// Columns selects columns [j0, j1).
func (m Ref[T]) Columns(j0, j1 int) (Ref[T], error) {
	v, err := m.columns(j0, j1)

	return Ref[T]{CRef[T]{v}}, err
}

// Row selects row i.
func (m Ref[T]) Row(i int) (RefStep[T], error) {
	v, err := m.row(i)

	return RefStep[T]{CRefStep[T]{v}}, err
}

// RowRange selects rows [i0, i1).
func (m Ref[T]) RowRange(i0, i1 int) (RefBlock[T], error) {
	v, err := m.rowRange(i0, i1)

	return RefBlock[T]{CRefBlock[T]{v}}, err
}

// RowsStep selects rows i0, i0+step, ... below i1.
func (m Ref[T]) RowsStep(i0, i1, step int) (RefStrided[T], error) {
	v, err := m.sub(Stride(i0, i1, step), All())

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// Block selects the rows×cols window at (i0, j0).
func (m Ref[T]) Block(i0, j0, rows, cols int) (RefBlock[T], error) {
	v, err := m.block(i0, j0, rows, cols)

	return RefBlock[T]{CRefBlock[T]{v}}, err
}

// Sub applies a range selector to each dimension.
func (m Ref[T]) Sub(rows, cols Range) (RefStrided[T], error) {
	v, err := m.sub(rows, cols)

	return RefStrided[T]{CRefStrided[T]{v}}, err
}

// T returns the mutable transposed view.
func (m Ref[T]) T() RefStrided[T] { return RefStrided[T]{CRefStrided[T]{m.transpose()}} }

func (m Ref[T]) target() view[T] { return m.view }
