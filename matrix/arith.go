// SPDX-License-Identifier: MIT

// Package matrix - arithmetic constructors.
//
// Every constructor returns a lazy node; nothing is computed until the node
// is assigned to a view. Matrix operands must share their shape; scalars are
// broadcast on either side.
//
//	c.Assign(Add(a, b))                  // c = a + b
//	c.Assign(MulScalar(Sub(a, b), 0.5))  // c = (a - b) * 0.5
//	c.Assign(ScalarDiv(1.0, a))          // c = 1 / a

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// Mapped is a unary node over a plain function.
type Mapped[T ops.Scalar] = Unary[T, FuncOp[T]]

// FuncOp2 adapts a plain two-argument function to ops.BinaryOp.
type FuncOp2[T ops.Scalar] func(a, b T) T

// Apply implements ops.BinaryOp.
func (f FuncOp2[T]) Apply(a, b T) T { return f(a, b) }

// Apply builds a op b for any binary functor.
func Apply[T ops.Scalar, O ops.BinaryOp[T]](op O, a, b Expr[T]) Binary[T, O] {
	return NewBinary(op, a, b)
}

// ApplyUnary builds op(a) for any unary functor.
func ApplyUnary[T ops.Scalar, O ops.UnaryOp[T]](op O, a Expr[T]) Unary[T, O] {
	return NewUnary(op, a)
}

// Map builds f(a) element-wise.
func Map[T ops.Scalar](f func(T) T, a Expr[T]) Mapped[T] {
	return NewUnary(FuncOp[T](f), a)
}

// Zip builds f(a, b) element-wise.
func Zip[T ops.Scalar](f func(a, b T) T, a, b Expr[T]) Binary[T, FuncOp2[T]] {
	return NewBinary(FuncOp2[T](f), a, b)
}

// --- matrix op matrix ---------------------------------------------------------

// Add builds a + b.
func Add[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Add[T]] { return NewBinary(ops.Add[T]{}, a, b) }

// Sub builds a - b.
func Sub[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Sub[T]] { return NewBinary(ops.Sub[T]{}, a, b) }

// Mul builds the element-wise product a .* b.
func Mul[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Mul[T]] { return NewBinary(ops.Mul[T]{}, a, b) }

// Div builds the element-wise quotient a ./ b.
func Div[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Div[T]] { return NewBinary(ops.Div[T]{}, a, b) }

// Max builds the element-wise maximum.
func Max[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Max[T]] { return NewBinary(ops.Max[T]{}, a, b) }

// Min builds the element-wise minimum.
func Min[T ops.Scalar](a, b Expr[T]) Binary[T, ops.Min[T]] { return NewBinary(ops.Min[T]{}, a, b) }

// --- matrix op scalar ---------------------------------------------------------

// AddScalar builds a + s.
func AddScalar[T ops.Scalar](a Expr[T], s T) BinaryFix2[T, ops.Add[T]] {
	return NewBinaryFix2(ops.Add[T]{}, a, s)
}

// SubScalar builds a - s.
func SubScalar[T ops.Scalar](a Expr[T], s T) BinaryFix2[T, ops.Sub[T]] {
	return NewBinaryFix2(ops.Sub[T]{}, a, s)
}

// MulScalar builds a * s.
func MulScalar[T ops.Scalar](a Expr[T], s T) BinaryFix2[T, ops.Mul[T]] {
	return NewBinaryFix2(ops.Mul[T]{}, a, s)
}

// DivScalar builds a / s.
func DivScalar[T ops.Scalar](a Expr[T], s T) BinaryFix2[T, ops.Div[T]] {
	return NewBinaryFix2(ops.Div[T]{}, a, s)
}

// --- scalar op matrix ---------------------------------------------------------

// ScalarAdd builds s + a.
func ScalarAdd[T ops.Scalar](s T, a Expr[T]) BinaryFix1[T, ops.Add[T]] {
	return NewBinaryFix1(ops.Add[T]{}, s, a)
}

// ScalarSub builds s - a.
func ScalarSub[T ops.Scalar](s T, a Expr[T]) BinaryFix1[T, ops.Sub[T]] {
	return NewBinaryFix1(ops.Sub[T]{}, s, a)
}

// ScalarMul builds s * a.
func ScalarMul[T ops.Scalar](s T, a Expr[T]) BinaryFix1[T, ops.Mul[T]] {
	return NewBinaryFix1(ops.Mul[T]{}, s, a)
}

// ScalarDiv builds s / a.
func ScalarDiv[T ops.Scalar](s T, a Expr[T]) BinaryFix1[T, ops.Div[T]] {
	return NewBinaryFix1(ops.Div[T]{}, s, a)
}

// --- unary --------------------------------------------------------------------

// Neg builds -a.
func Neg[T ops.Scalar](a Expr[T]) Unary[T, ops.Neg[T]] { return NewUnary(ops.Neg[T]{}, a) }

// Abs builds |a|.
func Abs[T ops.Scalar](a Expr[T]) Unary[T, ops.Abs[T]] { return NewUnary(ops.Abs[T]{}, a) }

// Sqr builds a .* a.
func Sqr[T ops.Scalar](a Expr[T]) Unary[T, ops.Sqr[T]] { return NewUnary(ops.Sqr[T]{}, a) }
