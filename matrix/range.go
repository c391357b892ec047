// SPDX-License-Identifier: MIT

package matrix

// Range selects indices Begin, Begin+Step, ... below End along one dimension.
// End < 0 means "through the last index". Step 0 is read as 1.
type Range struct {
	Begin int
	End   int
	Step  int
}

// All selects a whole dimension.
func All() Range { return Range{Begin: 0, End: -1, Step: 1} }

// Span selects [b, e).
func Span(b, e int) Range { return Range{Begin: b, End: e, Step: 1} }

// Stride selects b, b+step, ... below e.
func Stride(b, e, step int) Range { return Range{Begin: b, End: e, Step: step} }

// Single selects index i only.
func Single(i int) Range { return Range{Begin: i, End: i + 1, Step: 1} }

// resolve validates the range against a dimension of size n and returns
// (begin, count, step).
func (r Range) resolve(n int) (int, int, int, error) {
	step := r.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return 0, 0, 0, ErrBadRange
	}
	if r.Begin < 0 || r.Begin > n {
		return 0, 0, 0, ErrOutOfRange
	}
	end := r.End
	if end < 0 {
		end = n
	}
	if err := validateSpan(r.Begin, end, n); err != nil {
		return 0, 0, 0, err
	}

	return r.Begin, (end - r.Begin + step - 1) / step, step, nil
}
