// SPDX-License-Identifier: MIT

package matrix

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// baselineWidth is the vector width assumed when no wider unit is detected
// (SSE2 on amd64, NEON on arm64) or when SIMD is disabled.
const baselineWidth = 16

// envNoSIMD forces the baseline width when set to a non-empty value other than "0".
const envNoSIMD = "LIGHTMAT_NO_SIMD"

var vectorWidth = detectVectorWidth()

// detectVectorWidth picks the widest vector register size, in bytes,
// available on this CPU.
func detectVectorWidth() int {
	if v := os.Getenv(envNoSIMD); v != "" && v != "0" {
		return baselineWidth
	}
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX512F {
			return 64
		}
		if cpu.X86.HasAVX2 || cpu.X86.HasAVX {
			return 32
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return 16
		}
	}

	return baselineWidth
}

// AlignmentBytes returns the alignment, in bytes, that a buffer start must
// satisfy for the BaseAligned trait.
func AlignmentBytes() int { return vectorWidth }

// elemSize returns sizeof(T).
func elemSize[T any]() uintptr {
	var zero T

	return unsafe.Sizeof(zero)
}

// addrOf returns the address of s[0] (0 for an empty slice).
func addrOf[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// isAligned reports whether s starts on an AlignmentBytes boundary.
// Empty slices are never reported aligned.
func isAligned[T any](s []T) bool {
	a := addrOf(s)

	return a != 0 && a%uintptr(vectorWidth) == 0
}

// alignedSlice allocates n zeroed elements starting on an AlignmentBytes
// boundary. When the allocator's alignment cannot be corrected by whole
// elements, the unaligned slice is returned.
func alignedSlice[T any](n int) []T {
	if n == 0 {
		return make([]T, 0)
	}
	size := elemSize[T]()
	w := uintptr(vectorWidth)
	pad := int(w / size)
	buf := make([]T, n+pad)
	off := 0
	if rem := addrOf(buf) % w; rem != 0 && (w-rem)%size == 0 {
		off = int((w - rem) / size)
	}

	return buf[off : off+n : off+n]
}
