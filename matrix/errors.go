// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public entry points return these sentinels (possibly wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for invalid Option
// arguments (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with matrixErrorf/viewErrorf at the detection site; callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil source -> sticky expression error -> dimension mismatch -> range checks.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimension or rows*cols overflowing int).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShortBuffer indicates that a buffer is too small for the requested view.
	ErrShortBuffer = errors.New("matrix: buffer too short for shape")

	// ErrOutOfRange indicates that a row/column index or range lies outside
	// the parent view.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRange indicates a malformed range selector (negative step,
	// end before begin).
	ErrBadRange = errors.New("matrix: invalid range")

	// ErrDimensionMismatch indicates incompatible operand shapes, either the
	// runtime (rows, cols) or the static shape hints.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNarrowing signals an implicit element conversion that could lose
	// information; use Cast for an explicit conversion.
	ErrNarrowing = errors.New("matrix: narrowing conversion requires explicit cast")

	// ErrNilMatrix indicates that a nil source, destination or generator was used.
	ErrNilMatrix = errors.New("matrix: nil operand")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// viewErrorf wraps a sub-view construction error with the selector arguments.
func viewErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("view.%s(%d,%d): %w", method, a, b, err)
}
