// SPDX-License-Identifier: MIT

package ops

// Floats is a constraint for floating point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is the set of element types a matrix may hold.
type Scalar interface {
	Floats | Integers
}

// BinaryOp is a pure scalar function (a, b) -> a op b.
// Implementations must not keep state between calls.
type BinaryOp[T Scalar] interface {
	Apply(a, b T) T
}

// UnaryOp is a pure scalar function a -> op(a).
type UnaryOp[T Scalar] interface {
	Apply(a T) T
}
