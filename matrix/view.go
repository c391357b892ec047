// SPDX-License-Identifier: MIT

// Package matrix - shared view core.
//
// Purpose:
//   - Hold the (buffer, shape, strides, kind) tuple every public view embeds.
//   - Provide the read accessors, extent math and sub-view arithmetic once,
//     so the public view types only add what their kind allows.
//
// Ownership:
//   - A view borrows its buffer. It never copies or frees it; the caller
//     keeps the buffer alive for as long as any view or expression over it.
//
// Complexity quicksheet:
//   - every accessor and every sub-view constructor is O(1).

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// view is the common representation: element (i, j) lives at
// data[i*rs + j*ld].
type view[T ops.Scalar] struct {
	data     []T // data[0] is element (0,0); len == extent
	rows     int
	cols     int
	rs       int // row stride
	ld       int // leading dimension (column stride)
	ctRows   int // static hint, 0 = dynamic
	ctCols   int // static hint, 0 = dynamic
	kind     viewKind
	readonly bool
}

// viewer is implemented by every view type through the embedded core.
type viewer[T ops.Scalar] interface {
	base() view[T]
}

// extentOf returns the number of buffer slots spanned by a rows×cols window.
func extentOf(rows, cols, rs, ld int) int {
	if rows == 0 || cols == 0 {
		return 0
	}

	return (rows-1)*rs + (cols-1)*ld + 1
}

// newView validates the buffer and builds a packed-style view.
func newView[T ops.Scalar](data []T, rows, cols int, kind viewKind, readonly bool) (view[T], error) {
	if _, err := NewShape(rows, cols); err != nil {
		return view[T]{}, err
	}
	if err := validateBuffer(len(data), rows*cols); err != nil {
		return view[T]{}, err
	}
	v := view[T]{
		data:     data[:rows*cols],
		rows:     rows,
		cols:     cols,
		rs:       1,
		ld:       rows,
		kind:     kind,
		readonly: readonly,
	}
	switch kind {
	case kindCol:
		v.ctCols = 1
	case kindRow:
		v.ld, v.ctRows = 1, 1
	}

	return v, nil
}

// newStridedView validates explicit strides and builds a block view when
// columns are packed (rs == 1, ld >= rows), a strided view otherwise.
func newStridedView[T ops.Scalar](data []T, rows, cols, rs, ld int, readonly bool) (view[T], error) {
	if _, err := NewShape(rows, cols); err != nil {
		return view[T]{}, err
	}
	if err := validateStrides(rows, cols, rs, ld); err != nil {
		return view[T]{}, err
	}
	kind := kindStrided
	if rs == 1 && ld >= rows {
		kind = kindBlock
	}
	n := extentOf(rows, cols, rs, ld)
	if err := validateBuffer(len(data), n); err != nil {
		return view[T]{}, err
	}

	return view[T]{
		data:     data[:n],
		rows:     rows,
		cols:     cols,
		rs:       rs,
		ld:       ld,
		kind:     kind,
		readonly: readonly,
	}, nil
}

func (v view[T]) base() view[T] { return v }

// readOnly returns a copy flagged read-only.
func (v view[T]) readOnly() view[T] {
	v.readonly = true

	return v
}

// Rows returns the row count. O(1).
func (v view[T]) Rows() int { return v.rows }

// Cols returns the column count. O(1).
func (v view[T]) Cols() int { return v.cols }

// Shape returns (rows, cols). O(1).
func (v view[T]) Shape() Shape { return Shape{Rows: v.rows, Cols: v.cols} }

// Nelems returns rows*cols. O(1).
func (v view[T]) Nelems() int { return v.rows * v.cols }

// LeadDim returns the distance, in elements, between consecutive column starts.
func (v view[T]) LeadDim() int { return v.ld }

// Data returns the borrowed buffer slice starting at element (0,0) and
// ending after the last element of the view. Gaps between columns or rows
// belong to the parent and must not be interpreted as view elements.
func (v view[T]) Data() []T { return v.data }

// Traits reports the layout traits of the view.
func (v view[T]) Traits() Traits {
	t := Traits{
		CTRows:           v.ctRows,
		CTCols:           v.ctCols,
		Continuous:       v.kind.continuous(),
		PerColContinuous: v.kind.perColContinuous(),
		LinearAccessible: v.kind.linear(),
		ReadOnly:         v.readonly,
	}
	t.BaseAligned = isAligned(v.data)
	if t.BaseAligned && t.PerColContinuous {
		t.PerColAligned = v.cols <= 1 || (uintptr(v.ld)*elemSize[T]())%uintptr(vectorWidth) == 0
	}

	return t
}

// at is the general element read.
func (v view[T]) at(i, j int) T { return v.data[i*v.rs+j*v.ld] }

// set is the general element write.
func (v view[T]) set(i, j int, x T) { v.data[i*v.rs+j*v.ld] = x }

// flat maps linear index k for linear-accessible kinds.
func (v view[T]) flat(k int) int {
	switch {
	case v.rows == 1:
		return k * v.ld
	case v.cols == 1:
		return k * v.rs
	default:
		return k
	}
}

// col returns the packed column j. Valid only when rs == 1 or rows <= 1.
func (v view[T]) col(j int) []T {
	off := j * v.ld

	return v.data[off : off+v.rows]
}

// packedCols reports whether col() may be used.
func (v view[T]) packedCols() bool { return v.rs == 1 || v.rows <= 1 }

// window builds a sub-view starting at (i0, j0) with the given geometry.
func (v view[T]) window(i0, j0, rows, cols, rs, ld int, kind viewKind) view[T] {
	w := v
	w.rows, w.cols, w.rs, w.ld, w.kind = rows, cols, rs, ld, kind
	n := extentOf(rows, cols, rs, ld)
	if n == 0 {
		w.data = v.data[:0]
	} else {
		off := i0*v.rs + j0*v.ld
		w.data = v.data[off : off+n]
	}

	return w
}

// --- sub-view arithmetic (bounds-checked, O(1)) ---------------------------

// column selects column j.
func (v view[T]) column(j int) (view[T], error) {
	if err := validateIndex(j, v.cols); err != nil {
		return view[T]{}, viewErrorf("Column", j, j, err)
	}
	kind := kindCol
	if !v.packedCols() {
		kind = kindStrided
	}
	w := v.window(0, j, v.rows, 1, v.rs, v.rows, kind)
	w.ctCols = 1
	if kind == kindCol {
		w.ld = v.rows
	} else {
		w.ld = v.ld
	}

	return w, nil
}

// columns selects columns [j0, j1).
func (v view[T]) columns(j0, j1 int) (view[T], error) {
	if err := validateSpan(j0, j1, v.cols); err != nil {
		return view[T]{}, viewErrorf("Columns", j0, j1, err)
	}
	w := v.window(0, j0, v.rows, j1-j0, v.rs, v.ld, v.kind)
	if v.ctCols != 1 {
		w.ctCols = 0
	}

	return w, nil
}

// row selects row i as a 1×cols vector.
func (v view[T]) row(i int) (view[T], error) {
	if err := validateIndex(i, v.rows); err != nil {
		return view[T]{}, viewErrorf("Row", i, i, err)
	}
	kind := kindStep
	if v.kind == kindRow || v.kind == kindPacked && v.rows == 1 {
		kind = kindRow
	}
	if v.cols == 1 {
		kind = kindRow
	}
	w := v.window(i, 0, 1, v.cols, 1, v.ld, kind)
	if kind == kindRow {
		w.ld = 1
	}
	w.ctRows = 1

	return w, nil
}

// rowRange selects rows [i0, i1) keeping every column.
func (v view[T]) rowRange(i0, i1 int) (view[T], error) {
	if err := validateSpan(i0, i1, v.rows); err != nil {
		return view[T]{}, viewErrorf("Rows", i0, i1, err)
	}
	kind := kindBlock
	switch {
	case !v.packedCols():
		kind = kindStrided
	case v.kind == kindCol || v.kind == kindRow || v.kind == kindStep:
		kind = v.kind
	}
	w := v.window(i0, 0, i1-i0, v.cols, v.rs, v.ld, kind)
	if kind == kindCol {
		w.ld = i1 - i0
	}
	if v.ctRows != 1 {
		w.ctRows = 0
	}

	return w, nil
}

// block selects the rows×cols window at (i0, j0).
func (v view[T]) block(i0, j0, rows, cols int) (view[T], error) {
	if err := validateSpan(i0, i0+rows, v.rows); err != nil {
		return view[T]{}, viewErrorf("Block", i0, rows, err)
	}
	if err := validateSpan(j0, j0+cols, v.cols); err != nil {
		return view[T]{}, viewErrorf("Block", j0, cols, err)
	}
	kind := kindBlock
	if !v.packedCols() {
		kind = kindStrided
	}
	w := v.window(i0, j0, rows, cols, v.rs, v.ld, kind)
	w.ctRows, w.ctCols = 0, 0

	return w, nil
}

// sub applies a range selector in each dimension.
func (v view[T]) sub(rr, cr Range) (view[T], error) {
	rb, rn, rstep, err := rr.resolve(v.rows)
	if err != nil {
		return view[T]{}, viewErrorf("Sub", rr.Begin, rr.End, err)
	}
	cb, cn, cstep, err := cr.resolve(v.cols)
	if err != nil {
		return view[T]{}, viewErrorf("Sub", cr.Begin, cr.End, err)
	}
	w := v.window(rb, cb, rn, cn, v.rs*rstep, v.ld*cstep, kindStrided)
	w.ctRows, w.ctCols = 0, 0

	return w, nil
}

// transpose swaps the roles of rows and columns.
func (v view[T]) transpose() view[T] {
	w := v
	w.rows, w.cols = v.cols, v.rows
	w.rs, w.ld = v.ld, v.rs
	w.ctRows, w.ctCols = v.ctCols, v.ctRows
	switch v.kind {
	case kindCol:
		w.kind, w.rs, w.ld = kindRow, 1, 1
	case kindRow:
		w.kind, w.rs, w.ld = kindCol, 1, v.cols
	default:
		w.kind = kindStrided
	}

	return w
}

// segment selects elements [b, e) of a vector view.
func (v view[T]) segment(b, e int) (view[T], error) {
	n := v.rows
	if v.rows == 1 {
		n = v.cols
	}
	if err := validateSpan(b, e, n); err != nil {
		return view[T]{}, viewErrorf("Segment", b, e, err)
	}
	if v.kind == kindCol {
		w := v.window(b, 0, e-b, 1, 1, e-b, kindCol)
		w.ctRows = 0

		return w, nil
	}
	w := v.window(0, b, 1, e-b, 1, v.ld, v.kind)
	w.ctCols = 0

	return w, nil
}

// span is a type-erased description of the memory a view touches, used
// for alias detection between a destination and source leaves.
type span struct {
	start, end uintptr
	rs, ld     int
	rows, cols int
}

// spanOf describes v. An empty view yields an empty span.
func spanOf[T ops.Scalar](v view[T]) span {
	s := span{rs: v.rs, ld: v.ld, rows: v.rows, cols: v.cols}
	if len(v.data) == 0 {
		return s
	}
	s.start = addrOf(v.data)
	s.end = s.start + uintptr(len(v.data))*elemSize[T]()

	return s
}

// overlaps reports whether the two spans share any byte range.
func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// identical reports whether both spans address the same elements at the
// same (i, j) positions.
func (s span) identical(o span) bool {
	if s.start != o.start || s.rows != o.rows || s.cols != o.cols {
		return false
	}
	if s.rows > 1 && s.rs != o.rs {
		return false
	}

	return s.cols <= 1 || s.ld == o.ld
}
