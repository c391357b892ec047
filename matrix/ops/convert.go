// SPDX-License-Identifier: MIT

package ops

import "reflect"

// numClass groups element kinds for the conversion table.
type numClass uint8

const (
	classSigned numClass = iota
	classUnsigned
	classFloat
)

// describe returns the class and bit width of T's underlying kind.
func describe[T Scalar]() (numClass, int) {
	rt := reflect.TypeFor[T]()
	bits := int(rt.Size()) * 8
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return classFloat, bits
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return classUnsigned, bits
	default:
		return classSigned, bits
	}
}

// ImplicitlyConvertible reports whether a value of S may be stored into an
// element of T without an explicit cast.
//
// Table:
//   - same class, T at least as wide as S: allowed (int8→int32, float32→float64).
//   - unsigned → signed: allowed only when T is strictly wider (uint8→int16).
//   - any integer → float: allowed.
//   - float → integer, signed → unsigned, any narrowing: rejected.
func ImplicitlyConvertible[S, T Scalar]() bool {
	sc, sb := describe[S]()
	tc, tb := describe[T]()
	switch {
	case sc == tc:
		return tb >= sb
	case tc == classFloat:
		return true
	case sc == classUnsigned && tc == classSigned:
		return tb > sb
	default:
		return false
	}
}
