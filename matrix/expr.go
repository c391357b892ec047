// SPDX-License-Identifier: MIT

// Package matrix - lazy element-wise expressions.
//
// Purpose:
//   - Represent a deferred element-wise computation as a small node holding
//     an operator functor and its operands, computing nothing until a
//     destination asks for values.
//   - Expose three evaluation rules per node: per element (At), per column
//     (evalCol) and, for linear-accessible trees, flat (evalFlat). The column
//     and flat rules evaluate the left operand straight into the destination
//     slice and fold the remaining operand into it, so no scratch memory is
//     needed at any depth.
//
// Behavior highlights:
//   - Operands are held by reference (views) or by value (scalars); a node
//     must not outlive the buffers its views borrow.
//   - Shape errors are sticky: a node built from mismatched operands records
//     ErrDimensionMismatch, reported by Err() and by every evaluation.

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// Expr is any matrix-like source of values: views, expression nodes, or a
// caller type providing element access.
type Expr[T ops.Scalar] interface {
	Rows() int
	Cols() int
	At(i, j int) T
	Traits() Traits
}

// Mutable is a destination view. Only the view types of this package
// implement it.
type Mutable[T ops.Scalar] interface {
	Expr[T]
	Set(i, j int, x T)
	target() view[T]
}

// colEvaluator writes column j of the node into dst (len == Rows()).
type colEvaluator[T ops.Scalar] interface {
	evalCol(j int, dst []T)
}

// flatEvaluator writes every element in column-major order into dst.
type flatEvaluator[T ops.Scalar] interface {
	evalFlat(dst []T)
}

// leafWalker visits the memory spans of every view leaf of a node.
type leafWalker interface {
	walkLeaves(fn func(span))
}

// errCarrier exposes a sticky construction error.
type errCarrier interface {
	Err() error
}

// exprErr returns the sticky error of e, if any.
func exprErr(e any) error {
	if c, ok := e.(errCarrier); ok {
		return c.Err()
	}

	return nil
}

// walkOperand reports the leaves of an operand: the view itself, or the
// leaves of a nested node. Caller-defined expressions report nothing.
func walkOperand[T ops.Scalar](e Expr[T], fn func(span)) {
	switch s := e.(type) {
	case viewer[T]:
		fn(spanOf(s.base()))
	case leafWalker:
		s.walkLeaves(fn)
	}
}

// writeCol writes column j of e into dst.
func writeCol[T ops.Scalar](e Expr[T], j int, dst []T) {
	switch s := e.(type) {
	case viewer[T]:
		v := s.base()
		if v.packedCols() {
			copy(dst, v.col(j))

			return
		}
		for i := range dst {
			dst[i] = v.at(i, j)
		}
	case colEvaluator[T]:
		s.evalCol(j, dst)
	default:
		for i := range dst {
			dst[i] = e.At(i, j)
		}
	}
}

// writeFlat writes every element of a linear-accessible e into dst.
func writeFlat[T ops.Scalar](e Expr[T], dst []T) {
	switch s := e.(type) {
	case viewer[T]:
		v := s.base()
		if v.kind.continuous() {
			ops.Copy(len(dst), v.data, dst)

			return
		}
		for k := range dst {
			dst[k] = v.data[v.flat(k)]
		}
	case flatEvaluator[T]:
		s.evalFlat(dst)
	default:
		r := e.Rows()
		for k := range dst {
			dst[k] = e.At(k%r, k/r)
		}
	}
}

// foldCol computes dst[i] = op(dst[i], e(i, j)).
func foldCol[T ops.Scalar, O ops.BinaryOp[T]](op O, e Expr[T], j int, dst []T) {
	if s, ok := e.(viewer[T]); ok {
		v := s.base()
		if v.packedCols() {
			src := v.col(j)
			for i := range dst {
				dst[i] = op.Apply(dst[i], src[i])
			}

			return
		}
		for i := range dst {
			dst[i] = op.Apply(dst[i], v.at(i, j))
		}

		return
	}
	for i := range dst {
		dst[i] = op.Apply(dst[i], e.At(i, j))
	}
}

// foldFlat computes dst[k] = op(dst[k], e[k]) for a linear-accessible e.
func foldFlat[T ops.Scalar, O ops.BinaryOp[T]](op O, e Expr[T], dst []T) {
	if s, ok := e.(viewer[T]); ok {
		v := s.base()
		if v.kind.continuous() {
			src := v.data
			for k := range dst {
				dst[k] = op.Apply(dst[k], src[k])
			}

			return
		}
		for k := range dst {
			dst[k] = op.Apply(dst[k], v.data[v.flat(k)])
		}

		return
	}
	if f, ok := e.(interface{ AtFlat(k int) T }); ok {
		for k := range dst {
			dst[k] = op.Apply(dst[k], f.AtFlat(k))
		}

		return
	}
	r := e.Rows()
	for k := range dst {
		dst[k] = op.Apply(dst[k], e.At(k%r, k/r))
	}
}

// --- binary: matrix op matrix -------------------------------------------------

// Binary is the lazy node lhs op rhs over two same-shaped operands.
type Binary[T ops.Scalar, O ops.BinaryOp[T]] struct {
	op       O
	lhs, rhs Expr[T]
	traits   Traits
	err      error
}

// NewBinary builds lhs op rhs. A shape mismatch (runtime dimensions or both
// static hints known and different) is recorded as ErrDimensionMismatch.
func NewBinary[T ops.Scalar, O ops.BinaryOp[T]](op O, lhs, rhs Expr[T]) Binary[T, O] {
	b := Binary[T, O]{op: op, lhs: lhs, rhs: rhs, traits: Traits{ReadOnly: true}}
	switch {
	case lhs == nil || rhs == nil:
		b.err = matrixErrorf("Binary", ErrNilMatrix)
	case exprErr(lhs) != nil:
		b.err = exprErr(lhs)
	case exprErr(rhs) != nil:
		b.err = exprErr(rhs)
	case staticMismatch(lhs.Traits(), rhs.Traits()):
		b.err = matrixErrorf("Binary: static shape", ErrDimensionMismatch)
	default:
		if err := ValidateSameShape(lhs, rhs); err != nil {
			b.err = matrixErrorf("Binary", err)
		}
	}
	if b.err == nil {
		b.traits = exprTraits(lhs.Traits(), rhs.Traits())
	}

	return b
}

// Rows returns the operand row count.
func (b Binary[T, O]) Rows() int {
	if b.lhs == nil {
		return 0
	}

	return b.lhs.Rows()
}

// Cols returns the operand column count.
func (b Binary[T, O]) Cols() int {
	if b.lhs == nil {
		return 0
	}

	return b.lhs.Cols()
}

// Traits reports the conservative expression traits.
func (b Binary[T, O]) Traits() Traits { return b.traits }

// Err reports the first construction error in the tree.
func (b Binary[T, O]) Err() error { return b.err }

// At evaluates one element.
func (b Binary[T, O]) At(i, j int) T { return b.op.Apply(b.lhs.At(i, j), b.rhs.At(i, j)) }

func (b Binary[T, O]) evalCol(j int, dst []T) {
	l, lok := b.lhs.(viewer[T])
	r, rok := b.rhs.(viewer[T])
	if lok && rok {
		lv, rv := l.base(), r.base()
		if lv.packedCols() && rv.packedCols() {
			lc, rc := lv.col(j), rv.col(j)
			for i := range dst {
				dst[i] = b.op.Apply(lc[i], rc[i])
			}

			return
		}
	}
	writeCol(b.lhs, j, dst)
	foldCol(b.op, b.rhs, j, dst)
}

func (b Binary[T, O]) evalFlat(dst []T) {
	writeFlat(b.lhs, dst)
	foldFlat(b.op, b.rhs, dst)
}

func (b Binary[T, O]) walkLeaves(fn func(span)) {
	walkOperand(b.lhs, fn)
	walkOperand(b.rhs, fn)
}

// --- binary: matrix op scalar -------------------------------------------------

// BinaryFix2 is the lazy node lhs op s, the scalar broadcast to lhs's shape.
type BinaryFix2[T ops.Scalar, O ops.BinaryOp[T]] struct {
	op  O
	lhs Expr[T]
	s   T
	err error
}

// NewBinaryFix2 builds lhs op s.
func NewBinaryFix2[T ops.Scalar, O ops.BinaryOp[T]](op O, lhs Expr[T], s T) BinaryFix2[T, O] {
	b := BinaryFix2[T, O]{op: op, lhs: lhs, s: s}
	if lhs == nil {
		b.err = matrixErrorf("BinaryFix2", ErrNilMatrix)
	} else {
		b.err = exprErr(lhs)
	}

	return b
}

// Rows returns the matrix operand row count.
func (b BinaryFix2[T, O]) Rows() int {
	if b.lhs == nil {
		return 0
	}

	return b.lhs.Rows()
}

// Cols returns the matrix operand column count.
func (b BinaryFix2[T, O]) Cols() int {
	if b.lhs == nil {
		return 0
	}

	return b.lhs.Cols()
}

// Traits reports the conservative expression traits.
func (b BinaryFix2[T, O]) Traits() Traits {
	if b.lhs == nil {
		return Traits{ReadOnly: true}
	}

	return exprTraits(b.lhs.Traits())
}

// Err reports the first construction error in the tree.
func (b BinaryFix2[T, O]) Err() error { return b.err }

// At evaluates one element.
func (b BinaryFix2[T, O]) At(i, j int) T { return b.op.Apply(b.lhs.At(i, j), b.s) }

func (b BinaryFix2[T, O]) evalCol(j int, dst []T) {
	writeCol(b.lhs, j, dst)
	for i := range dst {
		dst[i] = b.op.Apply(dst[i], b.s)
	}
}

func (b BinaryFix2[T, O]) evalFlat(dst []T) {
	writeFlat(b.lhs, dst)
	for k := range dst {
		dst[k] = b.op.Apply(dst[k], b.s)
	}
}

func (b BinaryFix2[T, O]) walkLeaves(fn func(span)) { walkOperand(b.lhs, fn) }

// --- binary: scalar op matrix -------------------------------------------------

// BinaryFix1 is the lazy node s op rhs, the scalar broadcast to rhs's shape.
type BinaryFix1[T ops.Scalar, O ops.BinaryOp[T]] struct {
	op  O
	s   T
	rhs Expr[T]
	err error
}

// NewBinaryFix1 builds s op rhs.
func NewBinaryFix1[T ops.Scalar, O ops.BinaryOp[T]](op O, s T, rhs Expr[T]) BinaryFix1[T, O] {
	b := BinaryFix1[T, O]{op: op, s: s, rhs: rhs}
	if rhs == nil {
		b.err = matrixErrorf("BinaryFix1", ErrNilMatrix)
	} else {
		b.err = exprErr(rhs)
	}

	return b
}

// Rows returns the matrix operand row count.
func (b BinaryFix1[T, O]) Rows() int {
	if b.rhs == nil {
		return 0
	}

	return b.rhs.Rows()
}

// Cols returns the matrix operand column count.
func (b BinaryFix1[T, O]) Cols() int {
	if b.rhs == nil {
		return 0
	}

	return b.rhs.Cols()
}

// Traits reports the conservative expression traits.
func (b BinaryFix1[T, O]) Traits() Traits {
	if b.rhs == nil {
		return Traits{ReadOnly: true}
	}

	return exprTraits(b.rhs.Traits())
}

// Err reports the first construction error in the tree.
func (b BinaryFix1[T, O]) Err() error { return b.err }

// At evaluates one element.
func (b BinaryFix1[T, O]) At(i, j int) T { return b.op.Apply(b.s, b.rhs.At(i, j)) }

func (b BinaryFix1[T, O]) evalCol(j int, dst []T) {
	writeCol(b.rhs, j, dst)
	for i := range dst {
		dst[i] = b.op.Apply(b.s, dst[i])
	}
}

func (b BinaryFix1[T, O]) evalFlat(dst []T) {
	writeFlat(b.rhs, dst)
	for k := range dst {
		dst[k] = b.op.Apply(b.s, dst[k])
	}
}

func (b BinaryFix1[T, O]) walkLeaves(fn func(span)) { walkOperand(b.rhs, fn) }

// --- unary ----------------------------------------------------------------------

// Unary is the lazy node op(arg).
type Unary[T ops.Scalar, O ops.UnaryOp[T]] struct {
	op  O
	arg Expr[T]
	err error
}

// NewUnary builds op(arg).
func NewUnary[T ops.Scalar, O ops.UnaryOp[T]](op O, arg Expr[T]) Unary[T, O] {
	u := Unary[T, O]{op: op, arg: arg}
	if arg == nil {
		u.err = matrixErrorf("Unary", ErrNilMatrix)
	} else {
		u.err = exprErr(arg)
	}

	return u
}

// Rows returns the operand row count.
func (u Unary[T, O]) Rows() int {
	if u.arg == nil {
		return 0
	}

	return u.arg.Rows()
}

// Cols returns the operand column count.
func (u Unary[T, O]) Cols() int {
	if u.arg == nil {
		return 0
	}

	return u.arg.Cols()
}

// Traits reports the conservative expression traits.
func (u Unary[T, O]) Traits() Traits {
	if u.arg == nil {
		return Traits{ReadOnly: true}
	}

	return exprTraits(u.arg.Traits())
}

// Err reports the first construction error in the tree.
func (u Unary[T, O]) Err() error { return u.err }

// At evaluates one element.
func (u Unary[T, O]) At(i, j int) T { return u.op.Apply(u.arg.At(i, j)) }

func (u Unary[T, O]) evalCol(j int, dst []T) {
	writeCol(u.arg, j, dst)
	for i := range dst {
		dst[i] = u.op.Apply(dst[i])
	}
}

func (u Unary[T, O]) evalFlat(dst []T) {
	writeFlat(u.arg, dst)
	for k := range dst {
		dst[k] = u.op.Apply(dst[k])
	}
}

func (u Unary[T, O]) walkLeaves(fn func(span)) { walkOperand(u.arg, fn) }

// FuncOp adapts a plain function to ops.UnaryOp.
type FuncOp[T ops.Scalar] func(T) T

// Apply implements ops.UnaryOp.
func (f FuncOp[T]) Apply(a T) T { return f(a) }

// compile-time conformance
var (
	_ Expr[float64] = Binary[float64, ops.Add[float64]]{}
	_ Expr[float64] = BinaryFix1[float64, ops.Sub[float64]]{}
	_ Expr[float64] = BinaryFix2[float64, ops.Div[float64]]{}
	_ Expr[float64] = Unary[float64, ops.Neg[float64]]{}

	_ ops.UnaryOp[float64] = FuncOp[float64](nil)
)
