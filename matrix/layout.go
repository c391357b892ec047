// SPDX-License-Identifier: MIT

// Package matrix - layout traits.
//
// Purpose:
//   - Describe, per view kind, what the dispatcher may assume about memory:
//     continuity, per-column continuity, alignment and flat indexing.
//   - Carry static shape hints (0 = dynamic) alongside the runtime shape.
//
// Design:
//   - View kinds form a closed set; every trait is derived from the kind by a
//     switch, never stored independently, so a view cannot claim a layout it
//     does not have.
//   - Expressions are conservative: never continuous, never aligned; linear
//     accessible only when every operand is.

package matrix

// Traits answers the layout questions the dispatcher asks about a source or
// destination.
type Traits struct {
	CTRows int // static row count, 0 when only known at runtime
	CTCols int // static column count, 0 when only known at runtime

	Continuous       bool // all nelems elements occupy consecutive slots
	PerColContinuous bool // every column is packed (row stride 1)
	BaseAligned      bool // element (0,0) sits on an AlignmentBytes boundary
	PerColAligned    bool // every column start is aligned
	LinearAccessible bool // flat index k addresses element k in column-major order
	ReadOnly         bool // no mutating operation is offered
}

// viewKind enumerates the memory layouts a view can have.
type viewKind uint8

const (
	kindPacked  viewKind = iota // m×n, ld == rows
	kindCol                     // m×1
	kindRow                     // 1×n packed
	kindBlock                   // m×n, ld >= rows
	kindStep                    // 1×n with element step ld
	kindStrided                 // m×n with arbitrary row stride and ld
)

// String names the kind for diagnostics.
func (k viewKind) String() string {
	switch k {
	case kindPacked:
		return "packed"
	case kindCol:
		return "col"
	case kindRow:
		return "row"
	case kindBlock:
		return "block"
	case kindStep:
		return "step"
	default:
		return "strided"
	}
}

// continuous reports the Continuous trait of the kind.
func (k viewKind) continuous() bool {
	return k == kindPacked || k == kindCol || k == kindRow
}

// perColContinuous reports the PerColContinuous trait of the kind.
func (k viewKind) perColContinuous() bool {
	return k.continuous() || k == kindBlock
}

// linear reports the LinearAccessible trait of the kind.
func (k viewKind) linear() bool {
	return k.continuous() || k == kindStep
}

// staticDim merges two static hints of operands with equal runtime shape.
func staticDim(a, b int) int {
	if a != 0 {
		return a
	}

	return b
}

// staticMismatch reports whether two static hints are both known and differ.
func staticMismatch(a, b Traits) bool {
	return (a.CTRows != 0 && b.CTRows != 0 && a.CTRows != b.CTRows) ||
		(a.CTCols != 0 && b.CTCols != 0 && a.CTCols != b.CTCols)
}

// exprTraits derives the conservative traits of an expression over operands.
func exprTraits(ts ...Traits) Traits {
	out := Traits{LinearAccessible: true, ReadOnly: true}
	for _, t := range ts {
		out.CTRows = staticDim(out.CTRows, t.CTRows)
		out.CTCols = staticDim(out.CTCols, t.CTCols)
		out.LinearAccessible = out.LinearAccessible && t.LinearAccessible
	}

	return out
}
