// SPDX-License-Identifier: MIT

// Package matrix - vector views.
//
// Column vectors (m×1) and packed row vectors (1×n) are continuous and
// linear accessible; stepped row vectors (a row taken out of a matrix) are
// linear accessible with a per-element step equal to the parent leading
// dimension. Element access skips the unused index, and Segment on a
// vector always yields the same vector kind.

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// CRefCol is a read-only m×1 view.
type CRefCol[T ops.Scalar] struct{ view[T] }

// RefCol is a mutable m×1 view.
type RefCol[T ops.Scalar] struct{ CRefCol[T] }

// CRefRow is a read-only packed 1×n view.
type CRefRow[T ops.Scalar] struct{ view[T] }

// RefRow is a mutable packed 1×n view.
type RefRow[T ops.Scalar] struct{ CRefRow[T] }

// CRefStep is a read-only 1×n view whose elements are LeadDim apart.
type CRefStep[T ops.Scalar] struct{ view[T] }

// RefStep is a mutable stepped 1×n view.
type RefStep[T ops.Scalar] struct{ CRefStep[T] }

var (
	_ Mutable[float64] = RefCol[float64]{}
	_ Mutable[float64] = RefRow[float64]{}
	_ Mutable[float64] = RefStep[float64]{}
)

// NewCRefCol binds data[:m] as a read-only column vector.
func NewCRefCol[T ops.Scalar](data []T, m int) (CRefCol[T], error) {
	v, err := newView(data, m, 1, kindCol, true)
	if err != nil {
		return CRefCol[T]{}, matrixErrorf("NewCRefCol", err)
	}

	return CRefCol[T]{v}, nil
}

// NewRefCol binds data[:m] as a mutable column vector.
func NewRefCol[T ops.Scalar](data []T, m int) (RefCol[T], error) {
	v, err := newView(data, m, 1, kindCol, false)
	if err != nil {
		return RefCol[T]{}, matrixErrorf("NewRefCol", err)
	}

	return RefCol[T]{CRefCol[T]{v}}, nil
}

// NewCRefRow binds data[:n] as a read-only row vector.
func NewCRefRow[T ops.Scalar](data []T, n int) (CRefRow[T], error) {
	v, err := newView(data, 1, n, kindRow, true)
	if err != nil {
		return CRefRow[T]{}, matrixErrorf("NewCRefRow", err)
	}

	return CRefRow[T]{v}, nil
}

// NewRefRow binds data[:n] as a mutable row vector.
func NewRefRow[T ops.Scalar](data []T, n int) (RefRow[T], error) {
	v, err := newView(data, 1, n, kindRow, false)
	if err != nil {
		return RefRow[T]{}, matrixErrorf("NewRefRow", err)
	}

	return RefRow[T]{CRefRow[T]{v}}, nil
}

// --- column vector -----------------------------------------------------------

// At returns element i; j is ignored (always 0 for valid calls).
func (v CRefCol[T]) At(i, _ int) T { return v.data[i] }

// AtFlat returns element k.
func (v CRefCol[T]) AtFlat(k int) T { return v.data[k] }

// Len returns the number of elements.
func (v CRefCol[T]) Len() int { return v.rows }

// Segment selects elements [b, e).
func (v CRefCol[T]) Segment(b, e int) (CRefCol[T], error) {
	w, err := v.segment(b, e)

	return CRefCol[T]{w}, err
}

// T returns the row vector over the same elements.
func (v CRefCol[T]) T() CRefRow[T] { return CRefRow[T]{v.transpose()} }

// Set writes x at element i; j is ignored.
func (v RefCol[T]) Set(i, _ int, x T) { v.data[i] = x }

// SetFlat writes x at element k.
func (v RefCol[T]) SetFlat(k int, x T) { v.data[k] = x }

// Assign evaluates src into the vector.
func (v RefCol[T]) Assign(src Expr[T]) error { return Evaluate(src, v) }

// AssignGen lets g write directly into the vector.
func (v RefCol[T]) AssignGen(g Generator[T]) error { return Generate(g, v) }

// CopyFrom copies a same-length column vector (overlap safe).
func (v RefCol[T]) CopyFrom(src CRefCol[T]) error {
	if src.rows != v.rows {
		return matrixErrorf("RefCol.CopyFrom", ErrDimensionMismatch)
	}
	ops.Copy(v.rows, src.data, v.data)

	return nil
}

// Fill sets every element to x.
func (v RefCol[T]) Fill(x T) { fillView(v.view, x) }

// Const returns the read-only flavor.
func (v RefCol[T]) Const() CRefCol[T] { return CRefCol[T]{v.readOnly()} }

// Segment selects elements [b, e).
func (v RefCol[T]) Segment(b, e int) (RefCol[T], error) {
	w, err := v.segment(b, e)

	return RefCol[T]{CRefCol[T]{w}}, err
}

// T returns the mutable row vector over the same elements.
func (v RefCol[T]) T() RefRow[T] { return RefRow[T]{CRefRow[T]{v.transpose()}} }

func (v RefCol[T]) target() view[T] { return v.view }

// --- packed row vector -------------------------------------------------------

// At returns element j; i is ignored.
func (v CRefRow[T]) At(_, j int) T { return v.data[j] }

// AtFlat returns element k.
func (v CRefRow[T]) AtFlat(k int) T { return v.data[k] }

// Len returns the number of elements.
func (v CRefRow[T]) Len() int { return v.cols }

// Segment selects elements [b, e).
func (v CRefRow[T]) Segment(b, e int) (CRefRow[T], error) {
	w, err := v.segment(b, e)

	return CRefRow[T]{w}, err
}

// T returns the column vector over the same elements.
func (v CRefRow[T]) T() CRefCol[T] { return CRefCol[T]{v.transpose()} }

// Set writes x at element j; i is ignored.
func (v RefRow[T]) Set(_, j int, x T) { v.data[j] = x }

// SetFlat writes x at element k.
func (v RefRow[T]) SetFlat(k int, x T) { v.data[k] = x }

// Assign evaluates src into the vector.
func (v RefRow[T]) Assign(src Expr[T]) error { return Evaluate(src, v) }

// AssignGen lets g write directly into the vector.
func (v RefRow[T]) AssignGen(g Generator[T]) error { return Generate(g, v) }

// CopyFrom copies a same-length row vector (overlap safe).
func (v RefRow[T]) CopyFrom(src CRefRow[T]) error {
	if src.cols != v.cols {
		return matrixErrorf("RefRow.CopyFrom", ErrDimensionMismatch)
	}
	ops.Copy(v.cols, src.data, v.data)

	return nil
}

// Fill sets every element to x.
func (v RefRow[T]) Fill(x T) { fillView(v.view, x) }

// Const returns the read-only flavor.
func (v RefRow[T]) Const() CRefRow[T] { return CRefRow[T]{v.readOnly()} }

// Segment selects elements [b, e).
func (v RefRow[T]) Segment(b, e int) (RefRow[T], error) {
	w, err := v.segment(b, e)

	return RefRow[T]{CRefRow[T]{w}}, err
}

// T returns the mutable column vector over the same elements.
func (v RefRow[T]) T() RefCol[T] { return RefCol[T]{CRefCol[T]{v.transpose()}} }

func (v RefRow[T]) target() view[T] { return v.view }

// --- stepped row vector ------------------------------------------------------

// At returns element j; i is ignored.
func (v CRefStep[T]) At(_, j int) T { return v.data[j*v.ld] }

// AtFlat returns element k.
func (v CRefStep[T]) AtFlat(k int) T { return v.data[k*v.ld] }

// Len returns the number of elements.
func (v CRefStep[T]) Len() int { return v.cols }

// Step returns the distance between consecutive elements.
func (v CRefStep[T]) Step() int { return v.ld }

// Segment selects elements [b, e).
func (v CRefStep[T]) Segment(b, e int) (CRefStep[T], error) {
	w, err := v.segment(b, e)

	return CRefStep[T]{w}, err
}

// T returns the transposed (n×1, strided) view.
func (v CRefStep[T]) T() CRefStrided[T] { return CRefStrided[T]{v.transpose()} }

// Set writes x at element j; i is ignored.
func (v RefStep[T]) Set(_, j int, x T) { v.data[j*v.ld] = x }

// SetFlat writes x at element k.
func (v RefStep[T]) SetFlat(k int, x T) { v.data[k*v.ld] = x }

// Assign evaluates src into the vector.
func (v RefStep[T]) Assign(src Expr[T]) error { return Evaluate(src, v) }

// AssignGen lets g produce values for the vector.
func (v RefStep[T]) AssignGen(g Generator[T]) error { return Generate(g, v) }

// CopyFrom copies a same-length stepped vector element by element.
// Overlapping source and destination are routed through Evaluate.
func (v RefStep[T]) CopyFrom(src CRefStep[T]) error {
	if src.cols != v.cols {
		return matrixErrorf("RefStep.CopyFrom", ErrDimensionMismatch)
	}

	return Evaluate[T](src, v)
}

// Fill sets every element to x.
func (v RefStep[T]) Fill(x T) { fillView(v.view, x) }

// Const returns the read-only flavor.
func (v RefStep[T]) Const() CRefStep[T] { return CRefStep[T]{v.readOnly()} }

// Segment selects elements [b, e).
func (v RefStep[T]) Segment(b, e int) (RefStep[T], error) {
	w, err := v.segment(b, e)

	return RefStep[T]{CRefStep[T]{w}}, err
}

// T returns the mutable transposed view.
func (v RefStep[T]) T() RefStrided[T] { return RefStrided[T]{CRefStrided[T]{v.transpose()}} }

func (v RefStep[T]) target() view[T] { return v.view }
