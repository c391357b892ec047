// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Expose a narrow set of internal decisions (tier selection, alias
//     classification, layout kind, option resolution) to matrix_test so that
//     black-box tests can assert which path ran, not only what it produced.
//   - Every bridge is a pure forwarder suffixed _TestOnly; production code
//     never calls them.

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// SelectTier_TestOnly reports the tier Evaluate would run for src → dst
// when no aliasing is involved.
func SelectTier_TestOnly[T ops.Scalar](src Expr[T], dst Mutable[T], want Tier) Tier {
	return selectTier(src.Traits(), dst.Traits(), want)
}

// AliasKind_TestOnly names the aliasing class between src and dst:
// "none", "self", "identical" or "overlap".
func AliasKind_TestOnly[T ops.Scalar](src Expr[T], dst Mutable[T]) string {
	switch classifyAlias(src, dst.target()) {
	case aliasSelf:
		return "self"
	case aliasIdentical:
		return "identical"
	case aliasOverlap:
		return "overlap"
	default:
		return "none"
	}
}

// ViewKind_TestOnly names the layout kind of a view ("packed", "col", ...).
func ViewKind_TestOnly[T ops.Scalar](v Expr[T]) string {
	if b, ok := v.(viewer[T]); ok {
		return b.base().kind.String()
	}

	return "expr"
}

// RowStride_TestOnly returns the row stride of a view (0 for non-views).
func RowStride_TestOnly[T ops.Scalar](v Expr[T]) int {
	if b, ok := v.(viewer[T]); ok {
		return b.base().rs
	}

	return 0
}

// DetectVectorWidth_TestOnly re-runs CPU detection (honors LIGHTMAT_NO_SIMD).
func DetectVectorWidth_TestOnly() int { return detectVectorWidth() }

// AlignedSlice_TestOnly forwards to alignedSlice.
func AlignedSlice_TestOnly[T ops.Scalar](n int) []T { return alignedSlice[T](n) }

// IsAligned_TestOnly forwards to isAligned.
func IsAligned_TestOnly[T ops.Scalar](s []T) bool { return isAligned(s) }

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Tier       Tier
	AliasCheck bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after gatherOptions.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Tier: o.tier, AliasCheck: o.aliasCheck}
}
