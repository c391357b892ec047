// SPDX-License-Identifier: MIT

// Package matrix - element type conversion.
//
// Converted[T, S] reads an S-valued expression as T values, converting each
// element on access. Convert only accepts conversions the implicit table in
// ops allows (widening within a class, int → float, unsigned → strictly
// wider signed); Cast accepts any numeric conversion and follows Go's
// conversion rules (truncation toward zero, wrap-around on overflow).

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// Converted is the lazy node T(src).
type Converted[T, S ops.Scalar] struct {
	src Expr[S]
	err error
}

// Convert returns src viewed as T, or ErrNarrowing when S does not convert
// to T implicitly.
func Convert[T, S ops.Scalar](src Expr[S]) (Converted[T, S], error) {
	if !ops.ImplicitlyConvertible[S, T]() {
		return Converted[T, S]{}, matrixErrorf("Convert", ErrNarrowing)
	}

	return Cast[T](src), nil
}

// Cast returns src viewed as T with an explicit, possibly lossy conversion.
func Cast[T, S ops.Scalar](src Expr[S]) Converted[T, S] {
	c := Converted[T, S]{src: src}
	if src == nil {
		c.err = matrixErrorf("Cast", ErrNilMatrix)
	} else {
		c.err = exprErr(src)
	}

	return c
}

// AssignConvert evaluates src into dst with an implicit element conversion.
func AssignConvert[T, S ops.Scalar](dst Mutable[T], src Expr[S], opts ...Option) error {
	c, err := Convert[T](src)
	if err != nil {
		return err
	}

	return Evaluate[T](c, dst, opts...)
}

// Rows returns the source row count.
func (c Converted[T, S]) Rows() int {
	if c.src == nil {
		return 0
	}

	return c.src.Rows()
}

// Cols returns the source column count.
func (c Converted[T, S]) Cols() int {
	if c.src == nil {
		return 0
	}

	return c.src.Cols()
}

// Traits reports the conservative expression traits.
func (c Converted[T, S]) Traits() Traits {
	if c.src == nil {
		return Traits{ReadOnly: true}
	}

	return exprTraits(c.src.Traits())
}

// Err reports the first construction error in the tree.
func (c Converted[T, S]) Err() error { return c.err }

// At converts one element.
func (c Converted[T, S]) At(i, j int) T { return T(c.src.At(i, j)) }

func (c Converted[T, S]) evalCol(j int, dst []T) {
	if s, ok := c.src.(viewer[S]); ok {
		v := s.base()
		if v.packedCols() {
			for i, x := range v.col(j) {
				dst[i] = T(x)
			}

			return
		}
	}
	for i := range dst {
		dst[i] = T(c.src.At(i, j))
	}
}

func (c Converted[T, S]) evalFlat(dst []T) {
	if s, ok := c.src.(viewer[S]); ok {
		v := s.base()
		if v.kind.continuous() {
			for k, x := range v.data {
				dst[k] = T(x)
			}

			return
		}
	}
	r := c.src.Rows()
	for k := range dst {
		dst[k] = T(c.src.At(k%r, k/r))
	}
}

func (c Converted[T, S]) walkLeaves(fn func(span)) { walkOperand(c.src, fn) }

var _ Expr[float64] = Converted[float64, int32]{}
