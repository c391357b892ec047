// Package matrix offers dense column-major matrix views and lazy
// element-wise expressions over caller-owned buffers.
//
// The matrix package provides:
//
//   - Non-owning views (CRef/Ref, CRefBlock/RefBlock, CRefStrided/RefStrided
//     and the vector views CRefCol, CRefRow, CRefStep with their mutable
//     flavors) that interpret a slice as an m×n matrix with a leading
//     dimension, plus O(1) sub-view extraction: Column, Columns, Row,
//     RowRange, RowsStep, Block, Sub, T.
//   - Lazy expressions (Add, Sub, Mul, Div, Max, Min, the scalar forms
//     AddScalar/ScalarAdd and friends, Neg, Abs, Sqr, Map, Zip) that compute
//     nothing until they are assigned, closed under composition.
//   - Evaluate, a dispatcher that picks a flat, per-column or per-element
//     strategy from the layout traits of source and destination and detects
//     aliasing between them.
//   - Generators (Zeros, Fill, Identity, GeneratorFunc) that write straight
//     into a destination, and Convert/Cast for element type conversion.
//   - Dense, an owning aligned column-major matrix to create views from.
//
// Views borrow; they never copy, free or grow their buffer. Keep the buffer
// alive for as long as any view or expression built on it.
//
//	a, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.NewDense[float64](2, 2)
//	_ = c.View().Assign(matrix.Add(a.CView(), b.CView())) // [[6 8] [10 12]]
//
// See the examples in this package for usage patterns.
package matrix
