// SPDX-License-Identifier: MIT

// Package ops holds the scalar capability providers consumed by the matrix
// expression engine:
//
//   - element constraints (Scalar, Floats, Integers),
//   - pure binary functors (Add, Sub, Mul, Div, Max, Min) and unary
//     functors (Neg, Abs, Sqr) used as operator tags in expression nodes,
//   - the implicit-conversion table gating cross-type assignment,
//   - the raw memory copy primitive used by the flat-copy fast path.
//
// Every functor is a zero-sized value type with no side effects, so an
// expression node carrying one costs nothing beyond its operands.
package ops
