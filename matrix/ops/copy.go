// SPDX-License-Identifier: MIT

package ops

// Copy moves n elements from src to dst. Overlapping slices are handled
// like memmove. Both slices must hold at least n elements.
func Copy[T any](n int, src, dst []T) {
	if n <= 0 {
		return
	}
	copy(dst[:n], src[:n])
}
