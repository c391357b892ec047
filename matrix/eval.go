// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Evaluate any Expr into any mutable view with the fastest strategy the
//     layouts of both sides allow, the same way every ew* kernel in this
//     package prefers a flat fast-path and keeps a generic fallback.
//
// Tiers (first applicable wins):
//   - flat:    destination continuous, source continuous or linear accessible;
//     one run over nelems elements.
//   - column:  destination per-column continuous; one packed run per column.
//   - element: nested loop, columns outer, rows inner.
//
// Aliasing:
//   - source is the destination itself (same address and layout) → no-op.
//   - a leaf of the source is the destination → each column is evaluated
//     into a scratch column before being stored.
//   - any other overlap → the whole source is evaluated into a temporary,
//     then copied into the destination.
//
// Determinism & Performance:
//   - Results are identical on every tier; only the traversal differs.
//   - No allocation on the non-aliasing paths.

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// aliasKind classifies how a destination relates to the leaves of a source.
type aliasKind uint8

const (
	aliasNone      aliasKind = iota // no shared memory
	aliasSelf                       // source is the destination view
	aliasIdentical                  // a leaf of an expression is the destination view
	aliasOverlap                    // some leaf partially overlaps the destination
)

// Evaluate writes every element of src into dst.
// MAIN DESCRIPTION:
//   - Equivalent to dst(i, j) = src(i, j) for all (i, j), with the
//     guarantee that no source element is overwritten before it is read.
//
// Implementation:
//   - Stage 1: nil, sticky-error and shape checks (static hints, then runtime).
//   - Stage 2: classify aliasing between dst and every source leaf.
//   - Stage 3: select a tier from both Traits and the requested tier.
//   - Stage 4: run the tier (through a temporary when aliasing requires it).
//
// Errors:
//   - ErrNilMatrix, the sticky error of src, ErrDimensionMismatch.
//     dst is not touched when an error is returned.
//
// Complexity:
//   - Time O(rows*cols), Space O(1); O(rows) or O(rows*cols) under aliasing.
//
// AI-Hints:
//   - Caller-defined Expr types report no leaves; if they read from dst,
//     evaluate them into a fresh buffer first.
func Evaluate[T ops.Scalar](src Expr[T], dst Mutable[T], opts ...Option) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf("Evaluate: src", err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf("Evaluate: dst", err)
	}
	if err := exprErr(src); err != nil {
		return matrixErrorf("Evaluate", err)
	}
	if staticMismatch(src.Traits(), dst.Traits()) {
		return matrixErrorf("Evaluate: static shape", ErrDimensionMismatch)
	}
	if err := ValidateSameShape(src, dst); err != nil {
		return matrixErrorf("Evaluate", err)
	}

	d := dst.target()
	if d.rows == 0 || d.cols == 0 {
		return nil
	}
	o := gatherOptions(opts...)

	alias := aliasNone
	if o.aliasCheck {
		alias = classifyAlias(src, d)
	}

	switch alias {
	case aliasSelf:
		return nil
	case aliasIdentical:
		if o.tier == TierElement {
			evalElements(src, d)
		} else {
			evalColumnsBuffered(src, d)
		}
	case aliasOverlap:
		tmp := packedTemp[T](d.rows, d.cols)
		runTier(src, tmp, selectTier(src.Traits(), tmp.Traits(), o.tier))
		storeView(tmp, d)
	default:
		runTier(src, d, selectTier(src.Traits(), d.Traits(), o.tier))
	}

	return nil
}

// selectTier returns the first tier, starting at want, that the layouts allow.
func selectTier(src, dst Traits, want Tier) Tier {
	flatOK := dst.Continuous && (src.Continuous || src.LinearAccessible)
	colOK := dst.PerColContinuous

	switch want {
	case TierAuto, TierFlat:
		if flatOK {
			return TierFlat
		}
		if colOK {
			return TierColumn
		}
	case TierColumn:
		if colOK {
			return TierColumn
		}
	}

	return TierElement
}

// classifyAlias compares the destination span with every source leaf.
// Overlap dominates identity.
func classifyAlias[T ops.Scalar](src Expr[T], d view[T]) aliasKind {
	ds := spanOf(d)
	if v, ok := src.(viewer[T]); ok {
		s := spanOf(v.base())
		switch {
		case ds.identical(s):
			return aliasSelf
		case ds.overlaps(s):
			return aliasOverlap
		default:
			return aliasNone
		}
	}

	alias := aliasNone
	walkOperand(src, func(s span) {
		switch {
		case alias == aliasOverlap:
		case ds.identical(s):
			alias = aliasIdentical
		case ds.overlaps(s):
			alias = aliasOverlap
		}
	})

	return alias
}

// runTier evaluates src into d with the given tier.
func runTier[T ops.Scalar](src Expr[T], d view[T], tier Tier) {
	switch tier {
	case TierFlat:
		writeFlat(src, d.data[:d.rows*d.cols])
	case TierColumn:
		for j := 0; j < d.cols; j++ {
			writeCol(src, j, d.col(j))
		}
	default:
		evalElements(src, d)
	}
}

// evalElements is the element tier: dst(i, j) = src(i, j), columns outer.
func evalElements[T ops.Scalar](src Expr[T], d view[T]) {
	for j := 0; j < d.cols; j++ {
		off := j * d.ld
		for i := 0; i < d.rows; i++ {
			d.data[off+i*d.rs] = src.At(i, j)
		}
	}
}

// evalColumnsBuffered evaluates each column into scratch before storing it.
// Valid when every leaf that shares memory with d addresses it identically.
func evalColumnsBuffered[T ops.Scalar](src Expr[T], d view[T]) {
	buf := make([]T, d.rows)
	for j := 0; j < d.cols; j++ {
		writeCol(src, j, buf)
		storeCol(buf, d, j)
	}
}

// storeCol writes buf into column j of d.
func storeCol[T ops.Scalar](buf []T, d view[T], j int) {
	if d.packedCols() {
		copy(d.col(j), buf)

		return
	}
	for i, x := range buf {
		d.set(i, j, x)
	}
}

// storeView copies a packed temporary into d.
func storeView[T ops.Scalar](tmp, d view[T]) {
	if d.kind.continuous() {
		ops.Copy(len(tmp.data), tmp.data, d.data)

		return
	}
	for j := 0; j < d.cols; j++ {
		storeCol(tmp.col(j), d, j)
	}
}

// packedTemp allocates an aligned, mutable, packed rows×cols view.
func packedTemp[T ops.Scalar](rows, cols int) view[T] {
	return view[T]{
		data: alignedSlice[T](rows * cols),
		rows: rows,
		cols: cols,
		rs:   1,
		ld:   rows,
		kind: kindPacked,
	}
}
