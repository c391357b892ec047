// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lightmat/matrix/ops"

// Generator produces values for a destination by writing them directly into
// its storage. GenerateTo must write element (i, j) at dst[i + j*ld] for
// 0 <= i < rows, 0 <= j < cols and touch nothing else.
type Generator[T ops.Scalar] interface {
	GenerateTo(rows, cols, ld int, dst []T)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc[T ops.Scalar] func(rows, cols, ld int, dst []T)

// GenerateTo calls f.
func (f GeneratorFunc[T]) GenerateTo(rows, cols, ld int, dst []T) { f(rows, cols, ld, dst) }

type fillGen[T ops.Scalar] struct{ x T }

func (g fillGen[T]) GenerateTo(rows, cols, ld int, dst []T) {
	if ld == rows {
		for k := range dst[:rows*cols] {
			dst[k] = g.x
		}

		return
	}
	for j := 0; j < cols; j++ {
		c := dst[j*ld : j*ld+rows]
		for i := range c {
			c[i] = g.x
		}
	}
}

// Fill generates the constant x.
func Fill[T ops.Scalar](x T) Generator[T] { return fillGen[T]{x: x} }

// Zeros generates the zero value.
func Zeros[T ops.Scalar]() Generator[T] { return fillGen[T]{} }

type identityGen[T ops.Scalar] struct{}

func (identityGen[T]) GenerateTo(rows, cols, ld int, dst []T) {
	fillGen[T]{}.GenerateTo(rows, cols, ld, dst)
	for k := 0; k < rows && k < cols; k++ {
		dst[k+k*ld] = 1
	}
}

// Identity generates ones on the main diagonal and zeros elsewhere.
// Non-square destinations get the leading min(rows, cols) diagonal.
func Identity[T ops.Scalar]() Generator[T] { return identityGen[T]{} }

// Generate lets g produce every element of dst.
// Destinations with packed columns are written in place; others receive the
// values through a packed temporary.
func Generate[T ops.Scalar](g Generator[T], dst Mutable[T]) error {
	if err := ValidateNotNil(g); err != nil {
		return matrixErrorf("Generate: generator", err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf("Generate: dst", err)
	}
	d := dst.target()
	if d.rows == 0 || d.cols == 0 {
		return nil
	}
	if d.packedCols() {
		g.GenerateTo(d.rows, d.cols, d.ld, d.data)

		return nil
	}
	tmp := packedTemp[T](d.rows, d.cols)
	g.GenerateTo(tmp.rows, tmp.cols, tmp.ld, tmp.data)
	storeView(tmp, d)

	return nil
}

// fillView sets every element of v to x.
func fillView[T ops.Scalar](v view[T], x T) {
	if v.rows == 0 || v.cols == 0 {
		return
	}
	if v.kind.continuous() {
		for k := range v.data {
			v.data[k] = x
		}

		return
	}
	for j := 0; j < v.cols; j++ {
		for i := 0; i < v.rows; i++ {
			v.set(i, j, x)
		}
	}
}
