// SPDX-License-Identifier: MIT

package ops

// Add computes a + b.
type Add[T Scalar] struct{}

// Apply implements BinaryOp.
func (Add[T]) Apply(a, b T) T { return a + b }

// Sub computes a - b.
type Sub[T Scalar] struct{}

// Apply implements BinaryOp.
func (Sub[T]) Apply(a, b T) T { return a - b }

// Mul computes a * b.
type Mul[T Scalar] struct{}

// Apply implements BinaryOp.
func (Mul[T]) Apply(a, b T) T { return a * b }

// Div computes a / b.
// Integer division by zero panics as it does for plain Go arithmetic;
// floating point division follows IEEE 754 (±Inf, NaN).
type Div[T Scalar] struct{}

// Apply implements BinaryOp.
func (Div[T]) Apply(a, b T) T { return a / b }

// Max returns the larger of a and b (a when equal).
type Max[T Scalar] struct{}

// Apply implements BinaryOp.
func (Max[T]) Apply(a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Min returns the smaller of a and b (a when equal).
type Min[T Scalar] struct{}

// Apply implements BinaryOp.
func (Min[T]) Apply(a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Neg computes -a. Unsigned types wrap around.
type Neg[T Scalar] struct{}

// Apply implements UnaryOp.
func (Neg[T]) Apply(a T) T { return -a }

// Abs computes |a|. Unsigned values are returned unchanged.
type Abs[T Scalar] struct{}

// Apply implements UnaryOp.
func (Abs[T]) Apply(a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// Sqr computes a * a.
type Sqr[T Scalar] struct{}

// Apply implements UnaryOp.
func (Sqr[T]) Apply(a T) T { return a * a }

// Compile-time conformance.
var (
	_ BinaryOp[float64] = Add[float64]{}
	_ BinaryOp[float64] = Sub[float64]{}
	_ BinaryOp[float64] = Mul[float64]{}
	_ BinaryOp[float64] = Div[float64]{}
	_ BinaryOp[int32]   = Max[int32]{}
	_ BinaryOp[int32]   = Min[int32]{}
	_ UnaryOp[float32]  = Neg[float32]{}
	_ UnaryOp[int64]    = Abs[int64]{}
	_ UnaryOp[uint8]    = Sqr[uint8]{}
)
