//go:build nounsafe || gccgo || appengine

// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

// AllocAligned allocates 'bufs' slices, with 'each' bytes.
// Alignment is not guaranteed without unsafe.
func AllocAligned(bufs, each int) [][]byte {
	res := make([][]byte, bufs)
	for i := range res {
		res[i] = make([]byte, each)
	}
	return res
}

// aligned16 cannot probe addresses without unsafe; the unaligned kernel
// handles every buffer.
func aligned16(b []byte) bool {
	return false
}

// sliceOverlap only catches identical slices without unsafe.
func sliceOverlap(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
