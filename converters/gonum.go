// SPDX-License-Identifier: MIT

// Package converters - gonum/mat adapters.
//
// Purpose:
//   - See a gonum row-major matrix (blas64.General, *mat.Dense) as a strided
//     lightmat view over the same storage: element (i, j) lives at
//     Data[i*Stride + j], which is a view with row stride Stride and leading
//     dimension 1.
//   - Present any lightmat expression as a gonum mat.Matrix, and evaluate it
//     into a fresh *mat.Dense.
//
// Behavior highlights:
//   - Views over gonum storage take part in alias detection like any other
//     view, so ViewDense(d) may be assigned from an expression reading d.
//   - Plain mat.Matrix values without raw storage are read through At and
//     are invisible to alias detection.
//   - gonum rejects zero-sized matrices; ToDense reports ErrEmpty for them.

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lightmat/matrix"
)

// ErrEmpty is returned when a zero-sized matrix would have to be handed to
// gonum, which does not represent them.
var ErrEmpty = errors.New("converters: gonum matrices cannot be empty")

// convErrorf wraps an underlying error with the given operation tag.
func convErrorf(tag string, err error) error {
	return fmt.Errorf("converters.%s: %w", tag, err)
}

// FromGeneral views g as a read-only matrix without copying.
// Errors: matrix.ErrBadShape, matrix.ErrShortBuffer for malformed headers
// (the zero blas64.General included, its Stride is 0).
func FromGeneral(g blas64.General) (matrix.CRefStrided[float64], error) {
	v, err := matrix.NewCRefStrided(g.Data, g.Rows, g.Cols, g.Stride, 1)
	if err != nil {
		return matrix.CRefStrided[float64]{}, convErrorf("FromGeneral", err)
	}

	return v, nil
}

// RefGeneral views g as a mutable matrix; writes land in g.Data.
func RefGeneral(g blas64.General) (matrix.RefStrided[float64], error) {
	v, err := matrix.NewRefStrided(g.Data, g.Rows, g.Cols, g.Stride, 1)
	if err != nil {
		return matrix.RefStrided[float64]{}, convErrorf("RefGeneral", err)
	}

	return v, nil
}

// ViewDense returns a mutable view over the storage of d.
func ViewDense(d *mat.Dense) (matrix.RefStrided[float64], error) {
	if d == nil {
		return matrix.RefStrided[float64]{}, convErrorf("ViewDense", matrix.ErrNilMatrix)
	}

	return RefGeneral(d.RawMatrix())
}

// FromMat returns m as a lightmat expression. Matrices exposing raw
// storage (mat.RawMatrixer) become zero-copy views; anything else is read
// element by element.
func FromMat(m mat.Matrix) (matrix.Expr[float64], error) {
	if m == nil {
		return nil, convErrorf("FromMat", matrix.ErrNilMatrix)
	}
	if rm, ok := m.(mat.RawMatrixer); ok {
		v, err := FromGeneral(rm.RawMatrix())
		if err != nil {
			return nil, err
		}

		return v, nil
	}

	return gonumExpr{m: m}, nil
}

// ToDense evaluates e into a newly allocated *mat.Dense.
// Errors: ErrEmpty for zero-sized e, or any evaluation error of e.
func ToDense(e matrix.Expr[float64], opts ...matrix.Option) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, convErrorf("ToDense", err)
	}
	r, c := e.Rows(), e.Cols()
	if r == 0 || c == 0 {
		return nil, convErrorf("ToDense", ErrEmpty)
	}
	out := mat.NewDense(r, c, nil)
	dst, err := ViewDense(out)
	if err != nil {
		return nil, err
	}
	if err = matrix.Evaluate[float64](e, dst, opts...); err != nil {
		return nil, convErrorf("ToDense", err)
	}

	return out, nil
}

// AsMatrix presents e as a gonum mat.Matrix. Values are computed on every
// At call; evaluate into a Dense first when gonum reads elements repeatedly.
func AsMatrix(e matrix.Expr[float64]) mat.Matrix { return exprMatrix{e: e} }

// exprMatrix adapts a lightmat expression to mat.Matrix.
type exprMatrix struct{ e matrix.Expr[float64] }

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m exprMatrix) Dims() (r, c int)    { return m.e.Rows(), m.e.Cols() }
func (m exprMatrix) At(i, j int) float64 { return m.e.At(i, j) }
func (m exprMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// gonumExpr adapts a gonum mat.Matrix to matrix.Expr.
type gonumExpr struct{ m mat.Matrix }

func (g gonumExpr) Rows() int {
	r, _ := g.m.Dims()

	return r
}

func (g gonumExpr) Cols() int {
	_, c := g.m.Dims()

	return c
}

func (g gonumExpr) At(i, j int) float64 { return g.m.At(i, j) }

func (g gonumExpr) Traits() matrix.Traits { return matrix.Traits{ReadOnly: true} }

var (
	_ mat.Matrix           = exprMatrix{}
	_ matrix.Expr[float64] = gonumExpr{}
)
