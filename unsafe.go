//go:build !nounsafe && !gccgo && !appengine

// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

import "unsafe"

// AllocAligned allocates 'bufs' slices, with 'each' bytes.
// Each slice will start on a 64 byte aligned boundary, which guarantees
// the SSSE3 aligned-load kernel is eligible for every buffer.
func AllocAligned(bufs, each int) [][]byte {
	eachAligned := ((each + 63) / 64) * 64
	total := make([]byte, eachAligned*bufs+63)
	align := uint(uintptr(unsafe.Pointer(&total[0]))) & 63
	total = total[align:]
	res := make([][]byte, bufs)
	for i := range res {
		res[i] = total[:each:eachAligned]
		total = total[eachAligned:]
	}
	return res
}

// aligned16 reports whether b starts on a 16 byte boundary.
func aligned16(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&b[0]))&15 == 0
}

// sliceOverlap reports whether a and b share backing memory.
func sliceOverlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}
