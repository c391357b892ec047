// Package lightmat is a dense-matrix view layer with lazy element-wise
// expressions, written in pure Go.
//
// What is in the box?
//
//	• Views: borrowed column-major buffers seen as matrices, columns, rows,
//	  blocks and strided sub-matrices, with read-only and mutable flavors
//	• Expressions: element-wise arithmetic built as a tree of lazy nodes,
//	  nothing is computed until the tree is assigned to a destination
//	• Evaluation: one dispatcher picks a flat, per-column or per-element
//	  loop from the layout of the source and destination
//	• Safety: shape checks at construction and overlap detection at
//	  assignment, so x = xᵀ works as written
//	• Dense: an owning, SIMD-aligned matrix for when you need storage
//
// Layout:
//
//	matrix/      views, expressions, generators, the dispatcher and Dense
//	matrix/ops/  scalar constraint, element functors and conversion rules
//	converters/  zero-copy adapters to and from gonum/mat
//
// Quick example:
//
//	a, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.NewDense[float64](2, 2)
//	_ = c.Assign(matrix.Add(a.CView(), b.CView())) // [[6 8] [10 12]]
//
//	go get github.com/katalvlaran/lightmat/matrix
package lightmat
