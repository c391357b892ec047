// Package converters provides two-way adapters between lightmat views and
// popular Go matrix libraries:
//   - gonum.org/v1/gonum/mat (row-major Dense, blas64.General)
//
// Use converters to hand expressions to gonum without copying the
// operands, and to evaluate lightmat expressions straight into gonum
// storage.
package converters
