// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Own an aligned column-major buffer (offset = i + j*rows) that the view
//     types borrow; Dense is the only type in the package that allocates
//     element storage on behalf of the caller.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (View, CView, Block) and copy-based submatrix
//     extraction (Induced).
//
// AI-Hints:
//   - Build expressions over d.CView() and assign into d.View(); the
//     dispatcher's flat tier applies to both.
//   - Use Block(r0,c0,h,w) to avoid copies for windows; mutations reflect in the base matrix.
//   - Use Induced(rows, cols) to materialize a submatrix (copy) for independent lifetime/shape.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/Block: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lightmat/matrix/ops"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxBlock  = "Block"   // ctor tag for Dense.Block
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in column-major order (offset = i + j*r),
//     starting on an AlignmentBytes boundary whenever the allocator allows it.
type Dense[T ops.Scalar] struct {
	r, c int // row and column counts
	data []T // contiguous column-major storage (len == r*c)
}

// Compile-time assertions.
var (
	_ Dims         = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using column-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and aligned storage.
//
// Implementation:
//   - Stage 1: validate the shape (non-negative, no overflow).
//   - Stage 2: allocate a zero-filled aligned buffer.
//
// Behavior highlights:
//   - Zero-sized matrices are legal; their views are empty and every
//     operation on them is a no-op.
//
// Errors:
//   - ErrBadShape (negative dimension or overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T ops.Scalar](rows, cols int) (*Dense[T], error) {
	sh, err := NewShape(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewDense", err)
	}

	return &Dense[T]{r: rows, c: cols, data: alignedSlice[T](sh.Nelems())}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of the first r*c
// elements of colMajor.
// Errors: ErrBadShape, ErrShortBuffer.
func NewDenseFrom[T ops.Scalar](rows, cols int, colMajor []T) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if err = validateBuffer(len(colMajor), len(d.data)); err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	copy(d.data, colMajor)

	return d, nil
}

// NewDenseRows creates a matrix from row literals, the way matrices are
// usually written down. Every row must have the same length.
// Errors: ErrDimensionMismatch for ragged input.
func NewDenseRows[T ops.Scalar](rows [][]T) (*Dense[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf("Rows", i, len(row), ErrDimensionMismatch)
		}
		for j, x := range row {
			d.data[i+j*r] = x
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Data returns the column-major backing buffer (shared, not copied).
func (m *Dense[T]) Data() []T { return m.data }

// indexOf validates (row, col) and returns the column-major offset.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row + col*m.r, nil
}

// At reads element (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set writes element (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// View returns a mutable packed view over the whole matrix.
func (m *Dense[T]) View() Ref[T] {
	return Ref[T]{CRef[T]{m.packed(false)}}
}

// CView returns a read-only packed view over the whole matrix.
func (m *Dense[T]) CView() CRef[T] {
	return CRef[T]{m.packed(true)}
}

func (m *Dense[T]) packed(readonly bool) view[T] {
	return view[T]{
		data:     m.data,
		rows:     m.r,
		cols:     m.c,
		rs:       1,
		ld:       m.r,
		kind:     kindPacked,
		readonly: readonly,
	}
}

// Block creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Behavior highlights:
//   - Writes via the block reflect in the base; zero-area windows are legal.
//
// Errors:
//   - ErrOutOfRange when the window exceeds the matrix, ErrBadRange when a
//     size is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Block(r0, c0, rows, cols int) (RefBlock[T], error) {
	b, err := m.View().Block(r0, c0, rows, cols)
	if err != nil {
		return RefBlock[T]{}, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, err)
	}

	return b, nil
}

// Assign evaluates src into the whole matrix. See Evaluate.
func (m *Dense[T]) Assign(src Expr[T], opts ...Option) error {
	return Evaluate[T](src, m.View(), opts...)
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: alignedSlice[T](len(m.data))}
	copy(out.data, m.data)

	return out
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: validate every index once.
//   - Stage 2: allocate the result via NewDense.
//   - Stage 3: column-outer loops with direct offset math.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	for _, ri := range rowsIdx {
		if err := validateIndex(ri, m.r); err != nil {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, err)
		}
	}
	for _, cj := range colsIdx {
		if err := validateIndex(cj, m.c); err != nil {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, err)
		}
	}
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense[T](rp, cp)
	if err != nil {
		return nil, err
	}
	for j, cj := range colsIdx {
		src := m.data[cj*m.r : cj*m.r+m.r]
		dst := res.data[j*rp : j*rp+rp]
		for i, ri := range rowsIdx {
			dst[i] = src[ri]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in column-major order and calls f(i,j,v);
// it stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	for j := 0; j < m.c; j++ {
		base := j * m.r
		for i := 0; i < m.r; i++ {
			if !f(i, j, m.data[base+i]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, column-major order.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	for j := 0; j < m.c; j++ {
		base := j * m.r
		for i := 0; i < m.r; i++ {
			m.data[base+i] = f(i, j, m.data[base+i])
		}
	}
}

// String returns a human-readable representation, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[i+j*m.r])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
