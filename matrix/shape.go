// SPDX-License-Identifier: MIT

package matrix

import "math"

// Shape is a (rows, cols) pair. Both dimensions are non-negative and their
// product fits in an int.
type Shape struct {
	Rows int
	Cols int
}

// NewShape validates and returns a shape.
// Errors: ErrBadShape on negative dimensions or rows*cols overflow.
// Complexity: O(1).
func NewShape(rows, cols int) (Shape, error) {
	if rows < 0 || cols < 0 {
		return Shape{}, ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return Shape{}, ErrBadShape
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// Nelems returns rows*cols.
func (s Shape) Nelems() int { return s.Rows * s.Cols }

// IsEmpty reports whether the shape holds no element.
func (s Shape) IsEmpty() bool { return s.Rows == 0 || s.Cols == 0 }

// Equal reports whether both dimensions match.
func (s Shape) Equal(o Shape) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

// IsVector reports whether one of the dimensions is 1.
func (s Shape) IsVector() bool { return s.Rows == 1 || s.Cols == 1 }
