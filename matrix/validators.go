// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, buffer and range
//    checks shared by view constructors, sub-view extraction and evaluation.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dims is the minimal shape surface shared by views, expressions and Dense.
type Dims interface {
	Rows() int
	Cols() int
}

// ValidateNotNil ensures an operand is non-nil.
// Returns ErrNilMatrix if x == nil.
// Complexity: O(1).
func ValidateNotNil(x any) error {
	if x == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Dims) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateBuffer checks that a buffer of length n can hold need elements.
func validateBuffer(n, need int) error {
	if n < need {
		return ErrShortBuffer
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSpan checks 0 <= b <= e <= n.
func validateSpan(b, e, n int) error {
	if e < b {
		return ErrBadRange
	}
	if b < 0 || e > n {
		return ErrOutOfRange
	}

	return nil
}

// validateStrides checks that both strides are positive and that the last
// element of a rows×cols window is addressable.
func validateStrides(rows, cols, rs, ld int) error {
	if rs < 1 || ld < 1 {
		return ErrBadShape
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if rows-1 > math.MaxInt/rs || cols-1 > math.MaxInt/ld {
		return ErrBadShape
	}
	if (rows-1)*rs > math.MaxInt-(cols-1)*ld-1 {
		return ErrBadShape
	}

	return nil
}
